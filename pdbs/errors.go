package pdbs

import (
	"github.com/pkg/errors"

	"github.com/fabianbuerkle/spdb/bdd"
)

var (
	// ErrAxiomsUnsupported is returned when the task has axioms.
	ErrAxiomsUnsupported = errors.New("pdbs: tasks with axioms are not supported")

	// ErrConditionalEffectsUnsupported is returned when the task has
	// conditional effects.
	ErrConditionalEffectsUnsupported = errors.New("pdbs: tasks with conditional effects are not supported")

	// ErrOperatorCostMismatch is returned when WithOperatorCosts' slice length
	// does not equal the number of task operators.
	ErrOperatorCostMismatch = errors.New("pdbs: operator cost override length mismatch")

	// ErrNegativeCost is returned when any operator's (possibly overridden)
	// cost is negative.
	ErrNegativeCost = errors.New("pdbs: operator has a negative cost")

	// ErrBuildTimeout is returned when construction exceeds WithTimeout.
	ErrBuildTimeout = errors.New("pdbs: construction exceeded its deadline")

	// ErrMemoryLimit is the pdbs-level re-export of bdd.ErrMemoryLimit.
	ErrMemoryLimit = bdd.ErrMemoryLimit
)
