// Package pdbs implements the Symbolic Pattern Database heuristic: a
// backward, cost-layered BDD regression from a pattern-projected goal,
// materialized into a value-returning ADD and queried via GetValue.
package pdbs

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fabianbuerkle/spdb/bdd"
	"github.com/fabianbuerkle/spdb/task"
	"github.com/fabianbuerkle/spdb/transition"
)

// SPDB is a constructed symbolic pattern database: a read-only heuristic
// ADD plus the pattern and bookkeeping needed to answer GetValue/IsDeadEnd.
type SPDB struct {
	manager *bdd.Manager
	layout  *task.VarLayout
	pattern task.Pattern

	heuristic   bdd.NodeID
	reachable   bdd.NodeID
	initialHVal int
}

// NewSPDB constructs a pattern database over pattern against proxy, using
// varLayout's BDD variable allocation. Construction validates preconditions
// (no axioms, no conditional effects, a sorted/unique/non-empty pattern, a
// matching operator-cost override length, and non-negative operator costs),
// runs the regression engine to a fixed point, and materializes the
// heuristic ADD.
func NewSPDB(varLayout *task.VarLayout, proxy task.TaskProxy, pattern task.Pattern, opts ...Option) (*SPDB, error) {
	cfg := newConfig(opts...)

	if proxy.HasAxioms() {
		return nil, errors.WithStack(ErrAxiomsUnsupported)
	}
	if proxy.HasConditionalEffects() {
		return nil, errors.WithStack(ErrConditionalEffectsUnsupported)
	}
	if err := pattern.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	operators := proxy.Operators()
	if cfg.OperatorCosts != nil && len(cfg.OperatorCosts) != len(operators) {
		return nil, errors.WithStack(ErrOperatorCostMismatch)
	}

	costOf := func(op task.Operator) int {
		if cfg.OperatorCosts != nil {
			return cfg.OperatorCosts[op.ID]
		}
		return op.Cost
	}
	for _, op := range operators {
		if costOf(op) < 0 {
			return nil, errors.WithStack(ErrNegativeCost)
		}
	}

	start := time.Now()

	m := varLayout.Manager()
	if cfg.MemoryLimit > 0 {
		m.SetMemoryLimit(cfg.MemoryLimit)
	}
	numVars := len(proxy.Variables())

	builder := transition.NewBuilder(m, varLayout, numVars, costOf)
	relations := make([]*transition.Relation, 0, len(operators))
	for _, op := range operators {
		rel, err := builder.Build(op)
		if err != nil {
			return nil, errors.Wrapf(err, "pdbs: building transition relation for operator %q", op.Name)
		}
		relations = append(relations, rel)
	}

	nonPatternCube := varLayout.PatternCube(pattern, numVars)
	abstractGoal := projectGoal(m, varLayout, proxy.Goal(), pattern)
	abstractInitial := projectState(m, varLayout, proxy.Initial(), pattern)

	ctx := context.Background()
	var cancel context.CancelFunc
	if cfg.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	closed, initialHVal, err := regress(ctx, m, relations, nonPatternCube, abstractGoal, abstractInitial, cfg.Logger)
	if err != nil {
		return nil, errors.Wrap(err, "pdbs: regression failed")
	}

	if m.LimitExceeded() {
		return nil, errors.WithStack(ErrMemoryLimit)
	}

	heuristic := materialize(m, closed)

	reachable := bdd.ZeroNode
	for _, layer := range closed {
		reachable = m.Or(reachable, layer)
	}

	keep := []bdd.NodeID{m.Ref(heuristic), m.Ref(reachable)}
	m.GC(keep)

	if cfg.Dump {
		cfg.Logger.Info("spdb construction complete",
			zap.Duration("elapsed", time.Since(start)),
			zap.Int("pattern_size", len(pattern)),
			zap.Int("layers", len(closed)),
			zap.Int("initial_h", initialHVal),
			zap.Int("nodes", m.Size()),
		)
	}

	return &SPDB{
		manager:     m,
		layout:      varLayout,
		pattern:     pattern,
		heuristic:   heuristic,
		reachable:   reachable,
		initialHVal: initialHVal,
	}, nil
}

// Pattern returns the state-variable subset this database was built over.
func (s *SPDB) Pattern() task.Pattern { return s.pattern }

// projectGoal builds the abstract-goal BDD: the conjunction of every goal
// fact whose variable lies in pattern. A goal fact outside the pattern
// contributes nothing — the pattern's projection simply drops it.
func projectGoal(m *bdd.Manager, layout *task.VarLayout, goal []task.Fact, pattern task.Pattern) bdd.NodeID {
	inPattern := make(map[int]bool, len(pattern))
	for _, v := range pattern {
		inPattern[v] = true
	}
	g := bdd.OneNode
	for _, f := range goal {
		if !inPattern[f.Var] {
			continue
		}
		g = m.And(g, layout.PreBDD(f.Var, f.Val))
	}
	return g
}

// projectState builds the abstract BDD of a concrete state restricted to
// pattern: the conjunction of PreBDD(v, state[v]) for every v in pattern.
func projectState(m *bdd.Manager, layout *task.VarLayout, state task.State, pattern task.Pattern) bdd.NodeID {
	s := bdd.OneNode
	for _, v := range pattern {
		s = m.And(s, layout.PreBDD(v, state[v]))
	}
	return s
}
