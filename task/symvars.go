package task

import (
	"github.com/pkg/errors"

	"github.com/fabianbuerkle/spdb/bdd"
)

// ErrLayoutMismatch indicates a Manager was not sized for the variable
// layout a VarLayout computes from a task's variable domains.
var ErrLayoutMismatch = errors.New("task: manager variable count does not match layout")

// VarLayout is the symbolic-variable layer: it allocates BDD variables for
// a task's state variables using a one-hot/multi-valued encoding (one BDD
// variable per (stateVar, value) pair) rather than a binary encoding — see
// the module's design notes for why. Each primary block has an identically
// shaped primed block directly after it, so transition relations can
// conjoin unprimed preconditions with primed effects in the same Manager.
type VarLayout struct {
	manager *bdd.Manager
	offset  []int // offset[v] = first BDD var index (unprimed) for task Variable v
	total   int    // total unprimed BDD variables across all task variables
}

// NewVarLayout computes the one-hot layout for proxy's variables and
// verifies manager was constructed with exactly 2*total BDD variables (an
// unprimed block followed by a same-shaped primed block).
func NewVarLayout(proxy TaskProxy, manager *bdd.Manager) (*VarLayout, error) {
	vars := proxy.Variables()
	offset := make([]int, len(vars))
	total := 0
	for _, v := range vars {
		offset[v.ID] = total
		total += v.Domain
	}
	if manager.NumVars() != 2*total {
		return nil, ErrLayoutMismatch
	}
	return &VarLayout{manager: manager, offset: offset, total: total}, nil
}

// NumPrimary returns the number of unprimed BDD variables (the width of one
// block); the primed block occupies the same count starting at NumPrimary().
func (l *VarLayout) NumPrimary() int { return l.total }

// Manager returns the BDD manager this layout allocates variables in.
func (l *VarLayout) Manager() *bdd.Manager { return l.manager }

// VarsOf returns the unprimed BDD variable indices encoding stateVar — one
// per domain value (vars_index_pre in the original task_proxy).
func (l *VarLayout) VarsOf(stateVar int) []int {
	dom := l.domainOf(stateVar)
	out := make([]int, dom)
	for i := 0; i < dom; i++ {
		out[i] = l.offset[stateVar] + i
	}
	return out
}

// PrimedVarsOf returns the primed BDD variable indices encoding stateVar.
func (l *VarLayout) PrimedVarsOf(stateVar int) []int {
	unprimed := l.VarsOf(stateVar)
	out := make([]int, len(unprimed))
	for i, v := range unprimed {
		out[i] = v + l.total
	}
	return out
}

func (l *VarLayout) domainOf(stateVar int) int {
	if stateVar+1 < len(l.offset) {
		return l.offset[stateVar+1] - l.offset[stateVar]
	}
	return l.total - l.offset[stateVar]
}

// BDDVar returns the positive literal (a single-node BDD that is true iff
// the raw BDD variable at index is true) for a raw BDD variable index.
func (l *VarLayout) BDDVar(index int) bdd.NodeID {
	id, err := l.manager.MakeNode(index, bdd.ZeroNode, bdd.OneNode)
	if err != nil {
		return bdd.ZeroNode
	}
	return id
}

// PreBDD returns the unprimed literal asserting state variable v == val
// (bddVar(vars_index_pre(v)[val])).
func (l *VarLayout) PreBDD(v, val int) bdd.NodeID {
	return l.BDDVar(l.offset[v] + val)
}

// EffBDD returns the primed literal asserting state variable v == val in
// the successor state.
func (l *VarLayout) EffBDD(v, val int) bdd.NodeID {
	return l.BDDVar(l.offset[v] + val + l.total)
}

// UnprimedCube returns the cube of every unprimed BDD variable, the
// complement of PrimedCube — provided for callers that need to existentially
// quantify away a state-set BDD's unprimed block instead of its primed one.
func (l *VarLayout) UnprimedCube() *bdd.Cube {
	c := bdd.NewCube(2 * l.total)
	for i := 0; i < l.total; i++ {
		c.Add(i)
	}
	return c
}

// PrimedCube returns the cube of every primed BDD variable, the standard
// existential-quantification target of Relation.Preimage.
func (l *VarLayout) PrimedCube() *bdd.Cube {
	c := bdd.NewCube(2 * l.total)
	for i := 0; i < l.total; i++ {
		c.Add(l.total + i)
	}
	return c
}

// Assignment returns a predicate over raw unprimed BDD variable indices
// reporting whether state sets that variable — the shape bdd.Manager.Eval
// needs to walk a heuristic ADD or reachable-set BDD down to a single leaf
// for a concrete task.State.
func (l *VarLayout) Assignment(state State) func(int) bool {
	return func(index int) bool {
		stateVar := l.stateVarOf(index)
		return l.offset[stateVar]+state[stateVar] == index
	}
}

func (l *VarLayout) stateVarOf(index int) int {
	for v := len(l.offset) - 1; v >= 0; v-- {
		if l.offset[v] <= index {
			return v
		}
	}
	return 0
}

// PatternCube returns the cube of unprimed BDD variables for every task
// variable NOT in pattern: the Abstraction Cube Builder's output, used to
// existentially quantify a state set down onto just the pattern.
func (l *VarLayout) PatternCube(pattern Pattern, numVars int) *bdd.Cube {
	inPattern := make(map[int]bool, len(pattern))
	for _, v := range pattern {
		inPattern[v] = true
	}
	c := bdd.NewCube(2 * l.total)
	for v := 0; v < numVars; v++ {
		if inPattern[v] {
			continue
		}
		for _, idx := range l.VarsOf(v) {
			c.Add(idx)
		}
	}
	return c
}
