package sat

// explain returns the set of literals that, together, forced the
// antecedent to propagate (or, when pivot is LiteralNone, the set of
// literals that together falsified the conflicting clause). Every returned
// literal is currently True. Touching a learned clause this way bumps its
// activity: conflict analysis bumps the clause activity of every reason
// clause it visits.
func (s *Solver) explain(ref ClauseRef, pivot Literal) []Literal {
	c := s.clauses.Get(ref)
	out := s.explainBuf[:0]

	lits := c.literals
	if pivot == LiteralNone {
		for _, l := range lits {
			out = append(out, l.Negate())
		}
	} else {
		for _, l := range lits[1:] {
			out = append(out, l.Negate())
		}
	}

	if c.origin == OriginLearned {
		s.bumpClauseActivity(c)
	}

	s.explainBuf = out
	return out
}

// analyze performs 1-UIP resolution starting from the given conflict clause,
// returning an asserting learned clause (position 0 is the asserting
// literal, and — when the clause has at least two literals — position 1 is
// the literal with maximal assignment level among the rest) and the
// backjump level.
func (s *Solver) analyze(conflict ClauseRef) ([]Literal, int) {
	nImplicationPoints := 0

	s.seen.Clear()
	s.tmpLearnt = s.tmpLearnt[:0]
	s.tmpLearnt = append(s.tmpLearnt, LiteralNone) // placeholder for the asserting literal

	reason := conflict
	pivot := LiteralNone
	cursor := len(s.trail) - 1

	for {
		for _, q := range s.explain(reason, pivot) {
			v := q.Var()
			if s.seen.Contains(v) {
				continue
			}
			s.seen.Add(v)
			s.bumpVarActivity(v)

			if s.level[v] == s.decisionLevel() {
				nImplicationPoints++
				continue
			}
			s.tmpLearnt = append(s.tmpLearnt, q.Negate())
		}

		for {
			if cursor < 0 {
				invariantf("analyze", "ran off the trail looking for the next seen literal")
			}
			pivot = s.trail[cursor]
			cursor--
			if s.seen.Contains(pivot.Var()) {
				break
			}
		}
		reason = s.reason[pivot.Var()]

		nImplicationPoints--
		if nImplicationPoints == 0 {
			break
		}
	}

	s.tmpLearnt[0] = pivot.Negate()

	backjump := 0
	if len(s.tmpLearnt) >= 2 {
		maxPos := 1
		for i := 2; i < len(s.tmpLearnt); i++ {
			if s.level[s.tmpLearnt[i].Var()] > s.level[s.tmpLearnt[maxPos].Var()] {
				maxPos = i
			}
		}
		s.tmpLearnt[1], s.tmpLearnt[maxPos] = s.tmpLearnt[maxPos], s.tmpLearnt[1]
		backjump = s.level[s.tmpLearnt[1].Var()]
	}

	s.decayClauseActivity()
	s.decayVarActivity()

	learnt := make([]Literal, len(s.tmpLearnt))
	copy(learnt, s.tmpLearnt)
	return learnt, backjump
}
