package bdd

// nodeAt builds a node for variable v with existing low/high successors,
// applying the reduction rule. Used internally where v is already known
// valid (it came from an existing node in this same table).
func (m *Manager) nodeAt(v int32, lo, hi NodeID) NodeID {
	if lo == hi {
		return lo
	}
	return m.unique(node{Var: v, Low: lo, High: hi})
}

const (
	opITE byte = iota
	opExist
)

// ITE computes if-then-else(f, g, h): the Boolean/ADD-terminal kernel that
// And, Or, Not and Xor are built from, mirroring the single-kernel design
// common to BDD packages (Shannon expansion on the top variable of the
// three operands).
func (m *Manager) ITE(f, g, h NodeID) NodeID {
	switch {
	case f == OneNode:
		return g
	case f == ZeroNode:
		return h
	case g == h:
		return g
	case g == OneNode && h == ZeroNode:
		return f
	}

	if v, ok := m.cached(opITE, f, g, h); ok {
		return v
	}

	top := m.topVar(f, g, h)
	fLo, fHi := m.restrict(f, top)
	gLo, gHi := m.restrict(g, top)
	hLo, hHi := m.restrict(h, top)

	lo := m.ITE(fLo, gLo, hLo)
	hi := m.ITE(fHi, gHi, hHi)
	result := m.nodeAt(int32(top), lo, hi)

	m.store(opITE, f, g, h, result)
	return result
}

// topVar returns the smallest variable index among the operands' top
// variables (leaves contribute no variable).
func (m *Manager) topVar(ids ...NodeID) int {
	top := -1
	for _, id := range ids {
		if v := m.Var(id); v >= 0 && (top < 0 || v < top) {
			top = v
		}
	}
	return top
}

// restrict returns (low, high) for id with respect to variable v: if id's
// top variable is v, its actual branches; otherwise id unchanged on both
// branches (id does not depend on v).
func (m *Manager) restrict(id NodeID, v int) (NodeID, NodeID) {
	if m.Var(id) == v {
		return m.Low(id), m.High(id)
	}
	return id, id
}

// And computes the Boolean conjunction of two 0/1-leaf diagrams.
func (m *Manager) And(f, g NodeID) NodeID { return m.ITE(f, g, ZeroNode) }

// Or computes the Boolean disjunction of two 0/1-leaf diagrams.
func (m *Manager) Or(f, g NodeID) NodeID { return m.ITE(f, OneNode, g) }

// Not computes the Boolean complement of a 0/1-leaf diagram.
func (m *Manager) Not(f NodeID) NodeID { return m.ITE(f, ZeroNode, OneNode) }

// Xor computes the Boolean exclusive-or of two 0/1-leaf diagrams.
func (m *Manager) Xor(f, g NodeID) NodeID { return m.ITE(f, m.Not(g), g) }

// AndNot computes f ∧ ¬g, the set-difference operator used pervasively by
// the regression engine's "novel states only" gate (§4.4).
func (m *Manager) AndNot(f, g NodeID) NodeID { return m.ITE(f, m.Not(g), ZeroNode) }
