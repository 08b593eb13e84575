package bdd

import "github.com/bits-and-blooms/bitset"

// Cube is a set of primary variable indices to existentially quantify over
// in one pass, backed by a bitset for compact membership tests and cheap
// union/intersection when pattern projections are composed.
type Cube struct {
	bits *bitset.BitSet
}

// NewCube returns an empty cube sized for a manager with numVars variables.
func NewCube(numVars int) *Cube {
	return &Cube{bits: bitset.New(uint(numVars))}
}

// Add inserts variable v into the cube and returns the receiver, so cubes
// can be built fluently: NewCube(n).Add(2).Add(5).
func (c *Cube) Add(v int) *Cube {
	c.bits.Set(uint(v))
	return c
}

// Contains reports whether v is a member of the cube.
func (c *Cube) Contains(v int) bool {
	return c.bits.Test(uint(v))
}

// Len returns the number of variables in the cube.
func (c *Cube) Len() int {
	return int(c.bits.Count())
}

// Union returns a new cube containing the variables of both c and other.
func (c *Cube) Union(other *Cube) *Cube {
	return &Cube{bits: c.bits.Union(other.bits)}
}

// ExistAbstract existentially quantifies f over every variable in cube:
// the core "hide the unabstracted variables" primitive (§2, "Abstraction
// Cube Builder") used every regression step twice: by Relation.Preimage to
// quantify away the primed block, and by regress to project the preimage
// onto the pattern via the non-pattern cube.
func (m *Manager) ExistAbstract(f NodeID, cube *Cube) NodeID {
	if cube.Len() == 0 {
		return f
	}
	if v, ok := m.cached(opExist, f, NodeID(cube.bits.Count()), cubeKey(cube)); ok {
		return v
	}

	top := m.Var(f)
	if top < 0 {
		return f
	}

	lo := m.restrictLow(f, top)
	hi := m.restrictHigh(f, top)

	var result NodeID
	if cube.Contains(top) {
		result = m.Or(m.ExistAbstract(lo, cube), m.ExistAbstract(hi, cube))
	} else {
		loR := m.ExistAbstract(lo, cube)
		hiR := m.ExistAbstract(hi, cube)
		result = m.nodeAt(int32(top), loR, hiR)
	}

	m.store(opExist, f, NodeID(cube.bits.Count()), cubeKey(cube), result)
	return result
}

func (m *Manager) restrictLow(id NodeID, v int) NodeID {
	lo, _ := m.restrict(id, v)
	return lo
}

func (m *Manager) restrictHigh(id NodeID, v int) NodeID {
	_, hi := m.restrict(id, v)
	return hi
}

// cubeKey folds a cube's membership bits into a cache-distinguishing NodeID.
// ExistAbstract's cache key is this hash plus the cube's size, so two
// distinct cubes of equal size and equal hash share cache entries, and a
// hit for one returns the other's result. One SPDB construction passes only
// two cubes, the primed cube and the non-pattern cube, and these differ in
// size.
func cubeKey(c *Cube) NodeID {
	var h uint32
	for i, e := c.bits.NextSet(0); e; i, e = c.bits.NextSet(i + 1) {
		h = h*31 + uint32(i) + 1
	}
	return NodeID(h)
}
