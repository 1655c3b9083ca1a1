package sat

import "context"

// dpllSearch runs chronological-backtracking DPLL: no conflict analysis, no
// clause learning, no VSIDS, and no restarts. It shares BCP, the watch
// index, and the trail/backtrack machinery with the CDCL path; only the
// conflict-response and branching-variable strategies differ.
//
// triedOpposite[d] records whether the decision opened at level d+1 has
// already had its phase flipped once; once both phases of a level have been
// tried, resolving a conflict there means unwinding one level further.
func (s *Solver) dpllSearch(ctx context.Context) Status {
	triedOpposite := make([]bool, 0, 16)

	for {
		if ctxCancelled(ctx) {
			return StatusUnknown
		}

		if conflict := s.propagate(); conflict != ClauseRefNone {
			s.Stats.Conflicts++

			resolved := false
			for s.decisionLevel() > 0 {
				level := s.decisionLevel()
				decLit := s.trail[s.trailLim[level-1]]
				flipped := triedOpposite[level-1]

				s.backtrack(level - 1)
				triedOpposite = triedOpposite[:level-1]

				if flipped {
					continue // both phases of this level failed, unwind further
				}

				triedOpposite = append(triedOpposite, true)
				if s.assume(decLit.Negate()) {
					resolved = true
					break
				}
				// The opposite phase contradicts a fact already forced at
				// this level; nothing to branch on here either.
				s.backtrack(level - 1)
				triedOpposite = triedOpposite[:level-1]
			}

			if !resolved {
				return StatusUnsat
			}
			continue
		}

		v, ok := s.pickFirstUnassigned()
		if !ok {
			return StatusSat
		}
		s.Stats.Decisions++
		s.assume(s.decisionLiteral(v))
		triedOpposite = append(triedOpposite, false)
	}
}
