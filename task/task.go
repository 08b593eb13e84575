// Package task provides the planning-task frontend: the variable, fact,
// operator and goal model an SPDB is built against, plus a read-only
// TaskProxy view matching the planner's task_proxy surface.
package task

import (
	"sort"

	"github.com/pkg/errors"
)

// Variable describes one finite-domain state variable.
type Variable struct {
	ID     int
	Domain int
}

// Fact is an assignment of a single state variable to one of its values.
type Fact struct {
	Var int
	Val int
}

// Operator is a planning operator: a cost, a precondition fact list, and an
// effect fact list. Conditional effects are not represented — an Operator's
// Eff always applies unconditionally, per the module's Non-goals.
type Operator struct {
	ID   int
	Name string
	Pre  []Fact
	Eff  []Fact
	Cost int
}

// State is a full assignment, one value per task variable, indexed by
// Variable.ID.
type State []int

// Task is the complete planning task: variables, operators, the goal
// condition, and the initial state, plus the two unsupported-feature flags
// construction must reject.
type Task struct {
	Variables          []Variable
	Operators          []Operator
	Goal               []Fact
	Initial            State
	Axioms             bool
	ConditionalEffects bool
}

// TaskProxy is the read-only view an SPDB builds against, matching the
// planner's task_proxy surface (get_variables, get_operators,
// get_initial_state, get_goals). Proxy adapts a *Task to this interface.
type TaskProxy interface {
	Variables() []Variable
	Operators() []Operator
	Initial() State
	Goal() []Fact
	HasAxioms() bool
	HasConditionalEffects() bool
}

// Proxy is the thin read-only adapter from a *Task's public fields to the
// TaskProxy method surface construction actually consumes.
type Proxy struct {
	t *Task
}

// NewProxy wraps t as a TaskProxy.
func NewProxy(t *Task) *Proxy { return &Proxy{t: t} }

var _ TaskProxy = (*Proxy)(nil)

func (p *Proxy) Variables() []Variable       { return p.t.Variables }
func (p *Proxy) Operators() []Operator       { return p.t.Operators }
func (p *Proxy) Initial() State              { return p.t.Initial }
func (p *Proxy) Goal() []Fact                { return p.t.Goal }
func (p *Proxy) HasAxioms() bool             { return p.t.Axioms }
func (p *Proxy) HasConditionalEffects() bool { return p.t.ConditionalEffects }

// Pattern is a set of task variable IDs projected onto by an SPDB, required
// to be sorted, unique and non-empty.
type Pattern []int

// ErrPatternEmpty and ErrPatternNotSorted are returned by Validate.
var (
	ErrPatternEmpty     = errors.New("task: pattern is empty")
	ErrPatternNotSorted = errors.New("task: pattern is not sorted and unique")
)

// Validate checks the pattern precondition: sorted ascending, no duplicate,
// non-empty.
func (p Pattern) Validate() error {
	if len(p) == 0 {
		return ErrPatternEmpty
	}
	if !sort.IntsAreSorted(p) {
		return ErrPatternNotSorted
	}
	for i := 1; i < len(p); i++ {
		if p[i] == p[i-1] {
			return ErrPatternNotSorted
		}
	}
	return nil
}
