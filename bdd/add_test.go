package bdd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fabianbuerkle/spdb/bdd"
)

func TestAddPointwiseSum(t *testing.T) {
	m := bdd.NewManager(2, 1024, 0)
	x0, _ := m.MakeNode(0, bdd.ZeroNode, bdd.OneNode)

	three := m.FromBDDValue(x0, 3)
	five := m.FromBDDValue(x0, 5)

	sum := m.Add(three, five)
	assert.Equal(t, 8, m.FindMaxLeaf(sum))
}

func TestMaxPicksLargerLeaf(t *testing.T) {
	m := bdd.NewManager(2, 1024, 0)
	x0, _ := m.MakeNode(0, bdd.ZeroNode, bdd.OneNode)
	x1, _ := m.MakeNode(1, bdd.ZeroNode, bdd.OneNode)

	two := m.FromBDDValue(x0, 2)
	nine := m.FromBDDValue(x1, 9)

	merged := m.Max(two, nine)
	assert.Equal(t, 9, m.FindMaxLeaf(merged))
}

func TestFromBDDValueZeroOutsideTrueSet(t *testing.T) {
	m := bdd.NewManager(1, 1024, 0)
	x0, _ := m.MakeNode(0, bdd.ZeroNode, bdd.OneNode)

	converted := m.FromBDDValue(x0, 7)

	loValue, ok := m.LeafValue(m.Low(converted))
	assert.True(t, ok)
	assert.Equal(t, 0, loValue, "false branch of the source BDD must map to 0, not value")

	hiValue, ok := m.LeafValue(m.High(converted))
	assert.True(t, ok)
	assert.Equal(t, 7, hiValue)
}
