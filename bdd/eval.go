package bdd

// Eval walks id from the root to a leaf under the given assignment — isTrue
// reports whether a given variable index is set in the point being
// evaluated — and returns that leaf's value. This is the basic decision-
// diagram "evaluate at a point" operation GetValue and IsDeadEnd both build
// on: no caching is needed since each call only touches one root-to-leaf
// path.
func (m *Manager) Eval(id NodeID, isTrue func(v int) bool) int {
	for !m.IsLeaf(id) {
		if isTrue(m.Var(id)) {
			id = m.High(id)
		} else {
			id = m.Low(id)
		}
	}
	v, _ := m.LeafValue(id)
	return v
}
