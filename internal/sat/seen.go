package sat

// seenSet is a set of variables in [0, n) that can be cleared in O(1) by
// bumping a generation stamp rather than zeroing the backing array. It backs
// the analyzer's "seen" scratch array (spec: must be reset on every analyzer
// entry, never shared across solver instances).
type seenSet struct {
	stampOf []uint32
	stamp   uint32
}

func (s *seenSet) Contains(v Var) bool {
	return s.stampOf[v] == s.stamp
}

func (s *seenSet) Add(v Var) {
	s.stampOf[v] = s.stamp
}

// Clear invalidates all previous members in O(1).
func (s *seenSet) Clear() {
	s.stamp++
	if s.stamp == 0 { // wrapped around
		s.stamp = 1
		for i := range s.stampOf {
			s.stampOf[i] = 0
		}
	}
}

// Grow extends the set to cover one more variable.
func (s *seenSet) Grow() {
	s.stampOf = append(s.stampOf, 0)
}
