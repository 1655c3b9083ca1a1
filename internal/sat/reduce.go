package sat

import "sort"

// reduceDB gathers non-deleted learned clauses of length > 2 that are not
// locked, sorts them by ascending activity, and deletes the lower half.
// Clauses of length 2, or currently serving as the reason of an assigned
// variable, are never candidates.
func (s *Solver) reduceDB() {
	toDelete := make([]ClauseRef, 0, len(s.learnts)/2)
	kept := make([]ClauseRef, 0, len(s.learnts))

	for _, ref := range s.learnts {
		c := s.clauses.Get(ref)
		if c.deleted {
			continue
		}
		if c.Len() > 2 && !s.locked(ref) {
			toDelete = append(toDelete, ref)
		} else {
			kept = append(kept, ref)
		}
	}

	sort.Slice(toDelete, func(i, j int) bool {
		return s.clauses.Get(toDelete[i]).activity < s.clauses.Get(toDelete[j]).activity
	})

	half := len(toDelete) / 2
	for i, ref := range toDelete {
		if i < half {
			s.deleteClause(ref)
		} else {
			kept = append(kept, ref)
		}
	}

	s.learnts = kept
}

// deleteClause unwatches and soft-deletes ref. The caller must already have
// established ref is not locked.
func (s *Solver) deleteClause(ref ClauseRef) {
	c := s.clauses.Get(ref)
	s.watches.remove(c.literals[0].Negate(), ref)
	s.watches.remove(c.literals[1].Negate(), ref)
	s.clauses.MarkDeleted(ref)
}
