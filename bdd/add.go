package bdd

const (
	opAdd byte = iota + 16
	opMax
	opFromBDD
)

// apply computes the pointwise combination of two ADDs (or an ADD and a
// 0/1-leaf BDD used as a characteristic function) under combinator fn,
// recursing Shannon-style on the top variable exactly like ITE, but with an
// arbitrary leaf-to-leaf function instead of a fixed Boolean kernel.
func (m *Manager) apply(opcode byte, fn func(a, b int) int, f, g NodeID) NodeID {
	if fv, ok := m.LeafValue(f); ok {
		if gv, ok2 := m.LeafValue(g); ok2 {
			return m.Constant(fn(fv, gv))
		}
	}
	if v, ok := m.cached(opcode, f, g, NullNode); ok {
		return v
	}

	top := m.topVar(f, g)
	fLo, fHi := m.restrict(f, top)
	gLo, gHi := m.restrict(g, top)

	lo := m.apply(opcode, fn, fLo, gLo)
	hi := m.apply(opcode, fn, fHi, gHi)
	result := m.nodeAt(int32(top), lo, hi)

	m.store(opcode, f, g, NullNode, result)
	return result
}

// Add computes the pointwise sum of two ADDs. ADD Materialization does not
// use it: materialize folds the closed layers with Max.
func (m *Manager) Add(f, g NodeID) NodeID {
	return m.apply(opAdd, func(a, b int) int { return a + b }, f, g)
}

// Max computes the pointwise maximum of two ADDs.
func (m *Manager) Max(f, g NodeID) NodeID {
	return m.apply(opMax, func(a, b int) int {
		if a > b {
			return a
		}
		return b
	}, f, g)
}

// FromBDDValue converts a 0/1-leaf BDD f into an ADD that maps the true-set
// of f to value and everything else to 0: the "closed[h].Add() * const(h)"
// construction of §4.5, computed directly instead of via a separate
// multiply step.
func (m *Manager) FromBDDValue(f NodeID, value int) NodeID {
	if v, ok := m.cached(opFromBDD, f, NodeID(uint32(value)), NullNode); ok {
		return v
	}
	var convert func(NodeID) NodeID
	convert = func(id NodeID) NodeID {
		if id == ZeroNode {
			return ZeroNode
		}
		if id == OneNode {
			return m.Constant(value)
		}
		lo := convert(m.Low(id))
		hi := convert(m.High(id))
		return m.nodeAt(int32(m.Var(id)), lo, hi)
	}
	result := convert(f)
	m.store(opFromBDD, f, NodeID(uint32(value)), NullNode, result)
	return result
}

// FindMaxLeaf returns the largest leaf value reachable from f.
func (m *Manager) FindMaxLeaf(f NodeID) int {
	seen := make(map[NodeID]bool)
	best := 0
	first := true
	var walk func(NodeID)
	walk = func(id NodeID) {
		if seen[id] {
			return
		}
		seen[id] = true
		if v, ok := m.LeafValue(id); ok {
			if first || v > best {
				best = v
				first = false
			}
			return
		}
		walk(m.Low(id))
		walk(m.High(id))
	}
	walk(f)
	return best
}
