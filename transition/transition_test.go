package transition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabianbuerkle/spdb/bdd"
	"github.com/fabianbuerkle/spdb/task"
	"github.com/fabianbuerkle/spdb/transition"
)

// twoBoolVarTask has variables x (domain 2) and y (domain 2), and one
// operator that sets x:=1 while leaving y untouched.
func twoBoolVarTask() (*task.Task, *task.VarLayout, *bdd.Manager) {
	tk := &task.Task{
		Variables: []task.Variable{{ID: 0, Domain: 2}, {ID: 1, Domain: 2}},
		Operators: []task.Operator{
			{ID: 0, Name: "set-x", Pre: []task.Fact{{Var: 0, Val: 0}}, Eff: []task.Fact{{Var: 0, Val: 1}}, Cost: 1},
		},
		Goal:    []task.Fact{{Var: 0, Val: 1}},
		Initial: task.State{0, 0},
	}
	m := bdd.NewManager(8, 256, 0) // 4 unprimed + 4 primed
	layout, err := task.NewVarLayout(task.NewProxy(tk), m)
	if err != nil {
		panic(err)
	}
	return tk, layout, m
}

func TestBuildConjoinsPreconditionsAndEffects(t *testing.T) {
	tk, layout, m := twoBoolVarTask()
	b := transition.NewBuilder(m, layout, len(tk.Variables), func(op task.Operator) int { return op.Cost })

	rel, err := b.Build(tk.Operators[0])
	require.NoError(t, err)
	assert.Equal(t, 1, rel.Cost)
}

func TestPreimageOfGoalIncludesPrecondition(t *testing.T) {
	tk, layout, m := twoBoolVarTask()
	b := transition.NewBuilder(m, layout, len(tk.Variables), func(op task.Operator) int { return op.Cost })
	rel, err := b.Build(tk.Operators[0])
	require.NoError(t, err)

	goal := layout.PreBDD(0, 1) // x == 1
	pre := rel.Preimage(goal)

	// The predecessor set must include x==0 (the operator's precondition),
	// independent of y, since y is untouched.
	x0 := layout.PreBDD(0, 0)
	assert.Equal(t, x0, m.And(pre, x0), "x==0 must be a subset of the preimage")
}
