package sat

import (
	"context"
	"testing"
)

// checkTrailMonotonic asserts level[trail[i]] <= level[trail[j]] for all
// i < j: the trail is always built in non-decreasing decision-level order,
// never reordered by backtracking or restarts.
func checkTrailMonotonic(t *testing.T, s *Solver) {
	t.Helper()
	for i := 1; i < len(s.trail); i++ {
		prev := s.level[s.trail[i-1].Var()]
		cur := s.level[s.trail[i].Var()]
		if prev > cur {
			t.Errorf("trail not level-monotonic at index %d: level[trail[%d]]=%d > level[trail[%d]]=%d",
				i, i-1, prev, i, cur)
		}
	}
}

// TestTrail_LevelMonotonicity_Unsat drives a real search that backtracks
// and restarts many times (a moderately sized pigeonhole instance under
// the full-featured configuration) and checks the trail is still
// level-monotonic by the time the search concludes UNSAT.
func TestTrail_LevelMonotonicity_Unsat(t *testing.T) {
	s := NewSolver(ConfigCDCLVSIDSLuby, DefaultOptions)
	p := pigeonhole(6, 5)
	for i := 0; i < p.NumVars; i++ {
		s.AddVariable()
	}
	for _, c := range p.Clauses {
		s.AddClause(litsFrom(c...))
	}

	res := s.Solve(context.Background())
	if res.Status != StatusUnsat {
		t.Fatalf("pigeonhole(6,5): want UNSAT, got %v", res.Status)
	}
	checkTrailMonotonic(t, s)
}

// TestTrail_LevelMonotonicity_Sat does the same for a satisfiable instance
// that still requires several decisions (pigeonhole with one extra hole),
// checking monotonicity on the final, fully-assigned trail.
func TestTrail_LevelMonotonicity_Sat(t *testing.T) {
	s := NewSolver(ConfigCDCLVSIDSLuby, DefaultOptions)
	p := pigeonhole(4, 5)
	for i := 0; i < p.NumVars; i++ {
		s.AddVariable()
	}
	for _, c := range p.Clauses {
		s.AddClause(litsFrom(c...))
	}

	res := s.Solve(context.Background())
	if res.Status != StatusSat {
		t.Fatalf("pigeonhole(4,5): want SAT, got %v", res.Status)
	}
	checkTrailMonotonic(t, s)
}
