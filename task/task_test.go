package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fabianbuerkle/spdb/bdd"
	"github.com/fabianbuerkle/spdb/task"
)

func TestPatternValidate(t *testing.T) {
	cases := []struct {
		name    string
		pattern task.Pattern
		wantErr error
	}{
		{"empty", task.Pattern{}, task.ErrPatternEmpty},
		{"sorted unique", task.Pattern{0, 2, 3}, nil},
		{"duplicate", task.Pattern{0, 0, 1}, task.ErrPatternNotSorted},
		{"unsorted", task.Pattern{2, 0, 1}, task.ErrPatternNotSorted},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.pattern.Validate()
			if c.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, c.wantErr)
			}
		})
	}
}

func twoVarTask() *task.Task {
	return &task.Task{
		Variables: []task.Variable{{ID: 0, Domain: 2}, {ID: 1, Domain: 3}},
		Operators: []task.Operator{},
		Goal:      []task.Fact{{Var: 0, Val: 1}},
		Initial:   task.State{0, 0},
	}
}

func TestVarLayoutAllocatesOneHotBlocks(t *testing.T) {
	tk := twoVarTask()
	proxy := task.NewProxy(tk)

	// domain sizes 2 + 3 = 5 unprimed vars, doubled for the primed block.
	m := bdd.NewManager(10, 256, 0)
	layout, err := task.NewVarLayout(proxy, m)
	assert.NoError(t, err)

	assert.Equal(t, []int{0, 1}, layout.VarsOf(0))
	assert.Equal(t, []int{2, 3, 4}, layout.VarsOf(1))
	assert.Equal(t, []int{5, 6}, layout.PrimedVarsOf(0))
}

func TestVarLayoutMismatchedManagerSize(t *testing.T) {
	tk := twoVarTask()
	proxy := task.NewProxy(tk)

	m := bdd.NewManager(4, 256, 0)
	_, err := task.NewVarLayout(proxy, m)
	assert.ErrorIs(t, err, task.ErrLayoutMismatch)
}

func TestPreBDDDistinctLiteralsPerValue(t *testing.T) {
	tk := twoVarTask()
	proxy := task.NewProxy(tk)
	m := bdd.NewManager(10, 256, 0)
	layout, err := task.NewVarLayout(proxy, m)
	assert.NoError(t, err)

	v0 := layout.PreBDD(0, 0)
	v1 := layout.PreBDD(0, 1)
	assert.NotEqual(t, v0, v1)
}
