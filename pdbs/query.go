package pdbs

import "github.com/fabianbuerkle/spdb/task"

// GetValue returns the precomputed optimal cost from state's projection
// onto this pattern to the abstract goal, by walking the heuristic ADD down
// to its leaf under state's assignment. The result is meaningless for a
// state IsDeadEnd reports true for (the ADD defaults unreached points to 0,
// not infinity); callers must check IsDeadEnd first.
func (s *SPDB) GetValue(state task.State) int {
	assignment := s.layout.Assignment(state)
	return s.manager.Eval(s.heuristic, assignment)
}

// IsDeadEnd reports whether state's abstract projection was never reached
// by the regression engine — i.e. S ∧ ⋁closed[h] = ⊥ — tested by direct
// membership against the reachable-set BDD rather than inferred from
// GetValue returning 0, since a genuine h=0 state and an unreached state are
// otherwise indistinguishable.
func (s *SPDB) IsDeadEnd(state task.State) bool {
	assignment := s.layout.Assignment(state)
	return s.manager.Eval(s.reachable, assignment) == 0
}
