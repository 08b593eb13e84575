// Package transition builds the per-operator transition-relation BDDs a
// regression engine preimages against, and the frame-axiom handling that
// keeps variables an operator does not touch unchanged.
package transition

import (
	"github.com/fabianbuerkle/spdb/bdd"
	"github.com/fabianbuerkle/spdb/task"
)

// Relation holds one operator's transition-relation BDD (over the unprimed
// and primed variable blocks) and its cost.
type Relation struct {
	manager  *bdd.Manager
	layout   *task.VarLayout
	bddNode  bdd.NodeID
	Cost     int
	Operator task.Operator
}

// Builder constructs Relations for a task's operators against a shared
// VarLayout/Manager.
type Builder struct {
	manager *bdd.Manager
	layout  *task.VarLayout
	numVars int
	costOf  func(task.Operator) int
}

// NewBuilder returns a Builder for numVars task variables, reading operator
// cost via costOf (so callers can plug in an operator-cost override without
// this package knowing about pdbs.Config).
func NewBuilder(manager *bdd.Manager, layout *task.VarLayout, numVars int, costOf func(task.Operator) int) *Builder {
	return &Builder{manager: manager, layout: layout, numVars: numVars, costOf: costOf}
}

// Build conjoins PreBDD literals for every precondition fact (unprimed) with
// effect literals over the primed block, adds a frame axiom (v == v') for
// every state variable the operator does not write (including variables it
// only reads in its precondition), and returns the resulting Relation.
func (b *Builder) Build(op task.Operator) (*Relation, error) {
	m := b.manager

	rel := bdd.OneNode
	for _, f := range op.Pre {
		rel = m.And(rel, b.layout.PreBDD(f.Var, f.Val))
	}

	effected := make(map[int]bool, len(op.Eff))
	for _, f := range op.Eff {
		rel = m.And(rel, b.layout.EffBDD(f.Var, f.Val))
		effected[f.Var] = true
	}

	for v := 0; v < b.numVars; v++ {
		if effected[v] {
			continue
		}
		rel = m.And(rel, b.frameAxiom(v))
	}

	return &Relation{
		manager:  m,
		layout:   b.layout,
		bddNode:  rel,
		Cost:     b.costOf(op),
		Operator: op,
	}, nil
}

// frameAxiom returns the BDD asserting stateVar's primed value equals its
// unprimed value: ⋀_val (PreBDD(v,val) ↔ EffBDD(v,val)), every one-hot bit
// of v carried over unchanged — the standard "untouched variable is
// preserved" conjunct of a transition relation.
func (b *Builder) frameAxiom(stateVar int) bdd.NodeID {
	m := b.manager
	axiom := bdd.OneNode
	unprimed := b.layout.VarsOf(stateVar)
	for i := range unprimed {
		pre := b.layout.PreBDD(stateVar, i)
		eff := b.layout.EffBDD(stateVar, i)
		axiom = m.And(axiom, m.ITE(pre, eff, m.Not(eff)))
	}
	return axiom
}

// Preimage computes ∃vars'. T ∧ S[vars'/vars]: shift S from the unprimed
// block onto the primed block, conjoin with the transition relation, and
// existentially quantify the primed cube away, leaving a set of unprimed
// predecessor states.
func (r *Relation) Preimage(sUnprimed bdd.NodeID) bdd.NodeID {
	sPrimed := r.manager.Shift(sUnprimed, r.layout.NumPrimary())
	conjoined := r.manager.And(r.bddNode, sPrimed)
	return r.manager.ExistAbstract(conjoined, r.layout.PrimedCube())
}
