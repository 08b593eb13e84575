package bdd

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// NodeID identifies a node inside a single Manager's unique table. IDs are
// assigned sequentially and remain valid for the manager's lifetime, unless
// reclaimed by GC (§9: "scoped acquisition, guaranteed release on all exit
// paths").
type NodeID uint32

// Reserved terminal node IDs. A BDD is represented here as a 0/1-leaf ADD,
// so ZeroNode and OneNode double as both Boolean terminals and the additive
// identity / multiplicative identity leaves.
const (
	NullNode NodeID = 0
	ZeroNode NodeID = 1
	OneNode  NodeID = 2
)

// node is the unique-table key: (Var, Low, High) for an internal node, or
// (Value) for a leaf (Var == leafVar).
const leafVar = -1

type node struct {
	Var   int32
	Low   NodeID
	High  NodeID
	Value int
}

func (n node) isLeaf() bool { return n.Var == leafVar }

// Manager owns a unique table of decision-diagram nodes plus a computed
// (operation-result) cache. A BDD and an ADD built by the same Manager can
// share structure freely since they live in one node table.
type Manager struct {
	numVars int

	table []node
	index map[node]NodeID
	refs  []int32
	freed []bool   // freed[id]: slot id was reclaimed by GC and awaits reuse
	free  []NodeID // stack of freed[id]==true slot ids, reused by unique()
	live  int      // count of allocated, non-reclaimed table slots

	memoryLimit   int // 0 = unbounded
	limitExceeded bool

	cache *lru.Cache[opKey, NodeID]
}

type opKey struct {
	op      byte
	a, b, c NodeID
}

// NewManager creates a Manager for a state space with numVars primary BDD
// variables, numbered 0..numVars-1 in the diagram's variable order.
//
// cacheSize bounds the computed-table cache (the LRU-backed memoization of
// Apply/ITE/ExistAbstract results); 0 disables the cache. memoryLimit bounds
// the number of live nodes the unique table may hold; 0 means unbounded.
func NewManager(numVars, cacheSize, memoryLimit int) *Manager {
	m := &Manager{
		numVars:     numVars,
		table:       make([]node, 3, 64),
		index:       make(map[node]NodeID, 64),
		refs:        make([]int32, 3, 64),
		freed:       make([]bool, 3, 64),
		live:        3,
		memoryLimit: memoryLimit,
	}
	m.table[ZeroNode] = node{Var: leafVar, Value: 0}
	m.table[OneNode] = node{Var: leafVar, Value: 1}
	m.index[m.table[ZeroNode]] = ZeroNode
	m.index[m.table[OneNode]] = OneNode

	if cacheSize > 0 {
		c, err := lru.New[opKey, NodeID](cacheSize)
		if err == nil {
			m.cache = c
		}
	}
	return m
}

// NumVars returns the number of primary BDD variables this manager indexes.
func (m *Manager) NumVars() int { return m.numVars }

// Size returns the number of live nodes, including terminals. Table slots
// GC has reclaimed do not count, even though the backing table has not
// shrunk (they sit on the free-list awaiting reuse by unique()).
func (m *Manager) Size() int { return m.live }

// IsLeaf reports whether id names a leaf (terminal) node.
func (m *Manager) IsLeaf(id NodeID) bool {
	return m.table[id].isLeaf()
}

// LeafValue returns the integer value of a leaf node, or ok=false for an
// internal node or NullNode.
func (m *Manager) LeafValue(id NodeID) (int, bool) {
	if id == NullNode || int(id) >= len(m.table) {
		return 0, false
	}
	n := m.table[id]
	if !n.isLeaf() {
		return 0, false
	}
	return n.Value, true
}

// Var returns the top variable of id, or -1 for a leaf.
func (m *Manager) Var(id NodeID) int { return int(m.table[id].Var) }

// Low returns the 0-branch (variable false) successor of an internal node.
func (m *Manager) Low(id NodeID) NodeID { return m.table[id].Low }

// High returns the 1-branch (variable true) successor of an internal node.
func (m *Manager) High(id NodeID) NodeID { return m.table[id].High }

// Constant returns (creating if needed) the leaf node for value.
func (m *Manager) Constant(value int) NodeID {
	if value == 0 {
		return ZeroNode
	}
	if value == 1 {
		return OneNode
	}
	return m.unique(node{Var: leafVar, Value: value})
}

// MakeNode returns (creating or reusing, per the BDD/ADD reduction rule) the
// node for variable v branching to lo on false and hi on true.
//
// Reduction rule: a node whose two branches are identical is redundant and
// collapses to that branch — the ordinary BDD/ADD analogue of the teacher
// ZDD's "hi == zero" suppression rule in node.go.
func (m *Manager) MakeNode(v int, lo, hi NodeID) (NodeID, error) {
	if v < 0 || v >= m.numVars {
		return NullNode, ErrInvalidVar
	}
	if lo == hi {
		return lo, nil
	}
	return m.unique(node{Var: int32(v), Low: lo, High: hi}), nil
}

func (m *Manager) unique(n node) NodeID {
	if id, ok := m.index[n]; ok {
		return id
	}

	var id NodeID
	if k := len(m.free); k > 0 {
		id = m.free[k-1]
		m.free = m.free[:k-1]
		m.freed[id] = false
		m.table[id] = n
		m.refs[id] = 0
	} else {
		id = NodeID(len(m.table))
		m.table = append(m.table, n)
		m.refs = append(m.refs, 0)
		m.freed = append(m.freed, false)
	}

	m.index[n] = id
	m.live++
	if m.overBudget() {
		m.limitExceeded = true
	}
	return id
}

func (m *Manager) overBudget() bool {
	return m.memoryLimit > 0 && m.live > m.memoryLimit
}

// SetMemoryLimit (re)sets the unique-table node-count budget. A caller that
// constructs a Manager ahead of a specific build (the usual case, since the
// Manager here is shared across VarLayout and SPDB) can tighten it for that
// build via this setter rather than through NewManager alone.
func (m *Manager) SetMemoryLimit(nodes int) { m.memoryLimit = nodes }

// LimitExceeded reports whether the unique table has ever grown past the
// configured memory limit. The flag is sticky: it stays set even if GC
// later shrinks the table, since a construction that transiently blew its
// budget is still a failed construction.
func (m *Manager) LimitExceeded() bool { return m.limitExceeded }

// Ref increments id's reference count and returns it.
func (m *Manager) Ref(id NodeID) NodeID {
	if id != NullNode {
		m.refs[id]++
	}
	return id
}

// Deref decrements id's reference count. It does not reclaim storage by
// itself; call GC to sweep unreferenced, unreachable nodes.
func (m *Manager) Deref(id NodeID) {
	if id != NullNode && m.refs[id] > 0 {
		m.refs[id]--
	}
}

// GC reclaims unique-table entries that are neither a terminal, held live
// by a positive refcount, nor reachable from keep. It is the Manager-level
// realization of §9's "owned values released at the end of construction
// via scoped acquisition with guaranteed release on all exit paths": the
// construction orchestrator calls it once, passing the surviving persistent
// fields (heuristic ADD, reachable-set BDD), after every transient BDD created
// during regression has gone out of scope.
//
// Reclaimed slots are pushed onto a free-list that unique() drains before
// ever growing the table, so a node table does actually shrink in effect
// (Size() drops) and a Manager shared across several builds does not grow
// unboundedly across GC cycles — a bare index-map purge with no free-list
// would neither free memory nor let an identical future node dedupe against
// the reclaimed slot.
func (m *Manager) GC(keep []NodeID) {
	reachable := make(map[NodeID]bool, len(m.table))
	var mark func(NodeID)
	mark = func(id NodeID) {
		if id == NullNode || reachable[id] {
			return
		}
		reachable[id] = true
		n := m.table[id]
		if !n.isLeaf() {
			mark(n.Low)
			mark(n.High)
		}
	}
	reachable[ZeroNode] = true
	reachable[OneNode] = true
	for id := range m.refs {
		if m.refs[id] > 0 {
			mark(NodeID(id))
		}
	}
	for _, id := range keep {
		mark(id)
	}

	for id := 3; id < len(m.table); id++ {
		nid := NodeID(id)
		if m.freed[nid] || reachable[nid] {
			continue
		}
		delete(m.index, m.table[nid])
		m.freed[nid] = true
		m.refs[nid] = 0
		m.free = append(m.free, nid)
		m.live--
	}
	if m.cache != nil {
		m.cache.Purge()
	}
}

func (m *Manager) cached(op byte, a, b, c NodeID) (NodeID, bool) {
	if m.cache == nil {
		return NullNode, false
	}
	v, ok := m.cache.Get(opKey{op, a, b, c})
	return v, ok
}

func (m *Manager) store(op byte, a, b, c, result NodeID) {
	if m.cache != nil {
		m.cache.Add(opKey{op, a, b, c}, result)
	}
}
