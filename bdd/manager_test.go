package bdd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabianbuerkle/spdb/bdd"
)

func TestMakeNodeReductionRule(t *testing.T) {
	m := bdd.NewManager(3, 1024, 0)

	id, err := m.MakeNode(0, bdd.ZeroNode, bdd.ZeroNode)
	require.NoError(t, err)
	assert.Equal(t, bdd.ZeroNode, id, "identical branches must collapse to the branch")
}

func TestMakeNodeSharing(t *testing.T) {
	m := bdd.NewManager(3, 1024, 0)

	a, err := m.MakeNode(1, bdd.ZeroNode, bdd.OneNode)
	require.NoError(t, err)
	b, err := m.MakeNode(1, bdd.ZeroNode, bdd.OneNode)
	require.NoError(t, err)

	assert.Equal(t, a, b, "identical (var, lo, hi) triples must share one node")
}

func TestMakeNodeInvalidVar(t *testing.T) {
	m := bdd.NewManager(2, 1024, 0)

	_, err := m.MakeNode(5, bdd.ZeroNode, bdd.OneNode)
	assert.ErrorIs(t, err, bdd.ErrInvalidVar)
}

func TestBooleanIdentities(t *testing.T) {
	m := bdd.NewManager(2, 1024, 0)
	x0, _ := m.MakeNode(0, bdd.ZeroNode, bdd.OneNode)
	x1, _ := m.MakeNode(1, bdd.ZeroNode, bdd.OneNode)

	assert.Equal(t, x0, m.And(x0, x0))
	assert.Equal(t, bdd.ZeroNode, m.And(x0, m.Not(x0)))
	assert.Equal(t, bdd.OneNode, m.Or(x0, m.Not(x0)))
	assert.Equal(t, m.And(x0, x1), m.And(x1, x0), "And must be commutative regardless of variable order")
}

func TestSetMemoryLimitMarksExceededSticky(t *testing.T) {
	m := bdd.NewManager(4, 1024, 0)
	m.SetMemoryLimit(3) // terminals alone (NullNode, ZeroNode, OneNode) already fill this budget

	assert.False(t, m.LimitExceeded(), "budget is only checked on new allocation, not retroactively")

	_, err := m.MakeNode(0, bdd.ZeroNode, bdd.OneNode)
	require.NoError(t, err, "allocation itself still succeeds; the limit only flags the overrun")
	assert.True(t, m.LimitExceeded())

	m.GC(nil)
	assert.True(t, m.LimitExceeded(), "the flag stays set even after GC shrinks the table")
}

func TestGCReclaimsUnreachableNodes(t *testing.T) {
	m := bdd.NewManager(2, 1024, 0)
	x0, _ := m.MakeNode(0, bdd.ZeroNode, bdd.OneNode)
	keep := m.Ref(x0)

	transient, _ := m.MakeNode(1, bdd.ZeroNode, bdd.OneNode)
	_ = transient

	before := m.Size()
	m.GC([]bdd.NodeID{keep})
	assert.Less(t, m.Size(), before)
}
