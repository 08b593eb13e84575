// Package heuristic exposes the SPDB construction orchestrator behind the
// planner's heuristic plug-in surface: a capability-set Evaluator interface,
// a name-keyed Registry, and a default greedy pattern generator.
package heuristic

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/fabianbuerkle/spdb/pdbs"
	"github.com/fabianbuerkle/spdb/task"
)

// DeadEndSentinel is the integer a dead-end state evaluates to once adapted
// onto a planner's single-int heuristic surface, matching the planner-side
// convention of mapping "infinite cost" onto a fixed large sentinel rather
// than a second return value.
const DeadEndSentinel = math.MaxInt32

// Evaluator is the capability-set interface a search algorithm consumes:
// composition over inheritance, so a caller that only needs Evaluate need
// not care whether the underlying heuristic can also detect dead ends.
type Evaluator interface {
	Evaluate(state task.State) int
	IsDeadEnd(state task.State) bool
}

// SPDBHeuristic adapts a *pdbs.SPDB to Evaluator, mapping IsDeadEnd==true to
// DeadEndSentinel on Evaluate.
type SPDBHeuristic struct {
	db *pdbs.SPDB
}

// NewSPDBHeuristic wraps db as an Evaluator.
func NewSPDBHeuristic(db *pdbs.SPDB) *SPDBHeuristic {
	return &SPDBHeuristic{db: db}
}

var _ Evaluator = (*SPDBHeuristic)(nil)

// Evaluate returns db.GetValue(state), or DeadEndSentinel if state is a dead
// end.
func (h *SPDBHeuristic) Evaluate(state task.State) int {
	if h.db.IsDeadEnd(state) {
		return DeadEndSentinel
	}
	return h.db.GetValue(state)
}

// IsDeadEnd reports whether state is unreachable from the abstract goal.
func (h *SPDBHeuristic) IsDeadEnd(state task.State) bool {
	return h.db.IsDeadEnd(state)
}

// PatternGenerator selects the pattern an SPDB-backed Evaluator is built
// over. Pattern search/enumeration strategies beyond the bundled
// GreedyGenerator are out of this module's scope.
type PatternGenerator interface {
	Generate(proxy task.TaskProxy) (task.Pattern, error)
}

// GreedyGenerator builds a pattern from every goal variable plus, followed
// transitively, the precondition variables of operators that write an
// included variable, breadth-first, bounded by MaxSize —
// the same default strategy the original heuristic names "greedy()".
type GreedyGenerator struct {
	// MaxSize bounds the returned pattern's size. 0 means unbounded.
	MaxSize int
}

var _ PatternGenerator = (*GreedyGenerator)(nil)

// Generate collects the goal variables and their transitive precondition
// dependencies in breadth-first order, capped at MaxSize, and returns them
// sorted ascending.
func (g *GreedyGenerator) Generate(proxy task.TaskProxy) (task.Pattern, error) {
	included := make(map[int]bool)
	var order []int

	add := func(v int) bool {
		if included[v] {
			return false
		}
		if g.MaxSize > 0 && len(order) >= g.MaxSize {
			return false
		}
		included[v] = true
		order = append(order, v)
		return true
	}

	queue := make([]int, 0, len(proxy.Goal()))
	for _, f := range proxy.Goal() {
		if add(f.Var) {
			queue = append(queue, f.Var)
		}
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, op := range proxy.Operators() {
			if !operatorTouches(op, v) {
				continue
			}
			for _, pre := range op.Pre {
				if add(pre.Var) {
					queue = append(queue, pre.Var)
				}
			}
		}
	}

	pattern := make(task.Pattern, len(order))
	copy(pattern, order)
	sort.Ints(pattern)

	if err := pattern.Validate(); err != nil {
		return nil, errors.Wrap(err, "heuristic: greedy generator produced an invalid pattern")
	}
	return pattern, nil
}

func operatorTouches(op task.Operator, v int) bool {
	for _, f := range op.Eff {
		if f.Var == v {
			return true
		}
	}
	return false
}

// Registry maps heuristic names to constructors, so a planner's
// configuration language can select "spdb" (or the legacy name
// "symbolic_pdb") by string.
type Registry map[string]func(varLayout *task.VarLayout, proxy task.TaskProxy, gen PatternGenerator, opts ...pdbs.Option) (Evaluator, error)

// NewRegistry returns a Registry with "spdb" and the legacy alias
// "symbolic_pdb" both bound to the SPDB-backed constructor.
func NewRegistry() Registry {
	construct := func(varLayout *task.VarLayout, proxy task.TaskProxy, gen PatternGenerator, opts ...pdbs.Option) (Evaluator, error) {
		if gen == nil {
			gen = &GreedyGenerator{}
		}
		pattern, err := gen.Generate(proxy)
		if err != nil {
			return nil, err
		}
		db, err := pdbs.NewSPDB(varLayout, proxy, pattern, opts...)
		if err != nil {
			return nil, err
		}
		return NewSPDBHeuristic(db), nil
	}

	return Registry{
		"spdb":         construct,
		"symbolic_pdb": construct,
	}
}
