package pdbs

import "github.com/fabianbuerkle/spdb/bdd"

// materialize folds the disjoint closed-layer BDDs into one heuristic ADD:
// H = max_h closed[h].FromBDDValue(h). Layers are pairwise disjoint by
// construction (regress strips from each layer every state already settled
// at a lower h), so taking the pointwise maximum across layers is equivalent
// to summing them — Max avoids needing a throwaway additive identity for
// layer indices regress never filled in.
func materialize(m *bdd.Manager, closed []bdd.NodeID) bdd.NodeID {
	h := bdd.ZeroNode
	for layerCost, layer := range closed {
		if layer == bdd.ZeroNode {
			continue
		}
		valued := m.FromBDDValue(layer, layerCost)
		h = m.Max(h, valued)
	}
	return h
}
