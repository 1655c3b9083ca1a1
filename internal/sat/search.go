package sat

import "context"

func ctxCancelled(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// nextBranchVar picks the next variable to decide on, using VSIDS for the
// two VSIDS configurations and a static first-unassigned order otherwise.
func (s *Solver) nextBranchVar() (Var, bool) {
	if s.cfg == ConfigCDCLVSIDS || s.cfg == ConfigCDCLVSIDSLuby {
		return s.pickBranchingVar()
	}
	return s.pickFirstUnassigned()
}

// cdclSearch is the main CDCL loop: propagate, analyze any conflict and
// backjump, or branch when the formula is not yet conflicting and not yet
// fully assigned. Restarts and database reduction are gated to
// ConfigCDCLVSIDSLuby, matching the facade's configuration descriptions.
func (s *Solver) cdclSearch(ctx context.Context) Status {
	for {
		if ctxCancelled(ctx) {
			return StatusUnknown
		}

		conflict := s.propagate()
		if conflict != ClauseRefNone {
			s.Stats.Conflicts++

			if s.decisionLevel() == 0 {
				return StatusUnsat
			}

			learnt, backjump := s.analyze(conflict)
			s.backtrack(backjump)

			if len(learnt) == 1 {
				s.enqueue(learnt[0], ClauseRefNone)
			} else {
				s.addLearnedClause(learnt)
			}

			if s.cfg == ConfigCDCLVSIDSLuby {
				if s.restart.onConflict() {
					s.Stats.Restarts++
					s.backtrack(0)
				}
				if s.Stats.Conflicts >= s.nextReduceAt && len(s.learnts) > 0 {
					s.reduceDB()
					s.reduceInterval = int64(float64(s.reduceInterval) * s.opts.ReduceDBGrowth)
					if s.reduceInterval < 1 {
						s.reduceInterval = 1
					}
					s.nextReduceAt = s.Stats.Conflicts + s.reduceInterval
				}
			}
			continue
		}

		v, ok := s.nextBranchVar()
		if !ok {
			return StatusSat
		}
		s.Stats.Decisions++
		s.assume(s.decisionLiteral(v))
	}
}
