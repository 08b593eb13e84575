package bdd

const opShift byte = 32

// Shift renames every variable appearing in f by adding delta to its index,
// preserving relative order (so it is only valid when the shifted range
// does not interleave with variables f does not mention). This is the
// standard unprimed→primed renaming primitive transition-relation
// construction needs to move a state-set BDD built over unprimed variables
// onto the primed block before substituting it into Preimage.
func (m *Manager) Shift(f NodeID, delta int) NodeID {
	if delta == 0 {
		return f
	}
	if m.IsLeaf(f) {
		return f
	}
	if v, ok := m.cached(opShift, f, NodeID(int32(delta)), NullNode); ok {
		return v
	}

	lo := m.Shift(m.Low(f), delta)
	hi := m.Shift(m.High(f), delta)
	result := m.nodeAt(int32(m.Var(f)+delta), lo, hi)

	m.store(opShift, f, NodeID(int32(delta)), NullNode, result)
	return result
}
