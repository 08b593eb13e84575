package pdbs

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fabianbuerkle/spdb/bdd"
	"github.com/fabianbuerkle/spdb/transition"
)

// regress runs the cost-layered backward BFS: closed starts as [abstractGoal];
// the outer loop advances h from 0 while h < len(closed). For the current
// frontier closed[h], every transition relation is preimaged, existentially
// abstracted down onto the pattern, and gated against the SAME pre-iteration
// visited snapshot — not updated relation-by-relation — exactly matching
// spec.md §4.4 step 1/step 3 (and the original C++'s single post-inner-loop
// `vis |=`). Gating every relation within one h against one fixed snapshot
// makes the insertions a given h produces independent of relations' iteration
// order (spec.md §5); any premature insertion into a too-high layer made
// possible by that fixed snapshot is corrected when the loop reaches that
// layer, via the defensive `closed[h] ∧= ¬visited` strip applied once per
// outer iteration before visited is folded in and the frontier advances.
// Zero-cost relations insert into closed[h] itself; those states are folded
// into visited and expanded in a further round at the same h, until a round
// adds nothing new.
func regress(
	ctx context.Context,
	m *bdd.Manager,
	relations []*transition.Relation,
	nonPatternCube *bdd.Cube,
	abstractGoal, abstractInitial bdd.NodeID,
	logger *zap.Logger,
) ([]bdd.NodeID, int, error) {
	closed := []bdd.NodeID{abstractGoal}
	visited := abstractGoal
	initialHVal := -1

	if intersects(m, abstractGoal, abstractInitial) {
		initialHVal = 0
	}

	h := 0
	for h < len(closed) {
		if err := ctx.Err(); err != nil {
			if err == context.DeadlineExceeded {
				return nil, -1, errors.Wrapf(ErrBuildTimeout, "pdbs: regression cancelled: %v", context.Cause(ctx))
			}
			return nil, -1, errors.Wrap(context.Cause(ctx), "pdbs: regression cancelled")
		}

		frontier := closed[h]
		for frontier != bdd.ZeroNode {
			for _, rel := range relations {
				pre := rel.Preimage(frontier)
				projected := m.ExistAbstract(pre, nonPatternCube)
				novel := m.AndNot(projected, visited)
				if novel == bdd.ZeroNode {
					continue
				}

				target := h + rel.Cost
				for len(closed) <= target {
					closed = append(closed, bdd.ZeroNode)
				}
				closed[target] = m.Or(closed[target], novel)
			}

			// States a zero-cost relation just added to closed[h] are settled
			// at this h: mark them visited and expand them in another round.
			frontier = m.AndNot(closed[h], visited)
			visited = m.Or(visited, frontier)
			if initialHVal < 0 && intersects(m, frontier, abstractInitial) {
				initialHVal = h
			}
		}

		if logger != nil {
			logger.Debug("regression layer complete", zap.Int("h", h), zap.Int("nodes", m.Size()))
		}

		h++
		if h >= len(closed) {
			break
		}

		// Advance the frontier: strip states already settled at a lower
		// layer (defensive against the fixed-snapshot insertions above
		// landing one or more layers too high), then fold the resulting
		// frontier into visited exactly once for this h.
		closed[h] = m.AndNot(closed[h], visited)
		visited = m.Or(visited, closed[h])

		if initialHVal < 0 && intersects(m, closed[h], abstractInitial) {
			initialHVal = h
		}
	}

	return closed, initialHVal, nil
}

func intersects(m *bdd.Manager, a, b bdd.NodeID) bool {
	return m.And(a, b) != bdd.ZeroNode
}
