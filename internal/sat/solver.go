package sat

// Solver owns every piece of mutable search state for one CNF instance. It
// is strictly single-threaded and non-suspending: no method yields, and no
// state here is ever shared between two Solver instances (see the racing
// harness in internal/driver, which gives each racer its own deep copy of
// the parsed instance instead of sharing a Solver).
type Solver struct {
	cfg  Configuration
	opts Options

	clauses *clauseStore
	watches *watchIndex
	learnts []ClauseRef

	// Per-variable state (indexed by Var).
	level    []int
	reason   []ClauseRef
	polarity []bool // last-assigned phase, saved on unassignment

	// Per-literal state (indexed by Literal, size 2*NumVariables()).
	value []LBool

	// Trail & decision stack.
	trail    []Literal
	trailLim []int
	qhead    int

	// VSIDS.
	heap     *varHeap
	varInc   float64
	varDecay float64

	// Clause activity.
	clauseInc   float64
	clauseDecay float64

	// Restart & reduction scheduling (ConfigCDCLVSIDSLuby only).
	restart        *restartSchedule
	nextReduceAt   int64
	reduceInterval int64

	// Scratch shared across calls to avoid per-call allocation.
	seen       *seenSet
	tmpLearnt  []Literal
	explainBuf []Literal

	// Root-level contradiction detected while adding clauses/units.
	unsat bool

	Stats Stats
}

// Stats accumulates search counters surfaced through Result.
type Stats struct {
	Conflicts    int64
	Decisions    int64
	Propagations int64
	Restarts     int64
}

// NewSolver constructs an empty solver (no variables, no clauses) for the
// given configuration and options.
func NewSolver(cfg Configuration, opts Options) *Solver {
	return &Solver{
		cfg:         cfg,
		opts:        opts,
		clauses:     newClauseStore(),
		watches:     newWatchIndex(),
		heap:        newVarHeap(),
		varInc:      1,
		varDecay:    opts.VariableDecay,
		clauseInc:   1,
		clauseDecay: opts.ClauseDecay,
		seen:        &seenSet{},
		restart:     newRestartSchedule(),
		nextReduceAt:   opts.ReduceDBFirstTrigger,
		reduceInterval: opts.ReduceDBFirstTrigger,
	}
}

// NumVariables returns the number of variables registered so far.
func (s *Solver) NumVariables() int { return len(s.level) }

// NumAssigned returns the number of variables currently assigned.
func (s *Solver) NumAssigned() int { return len(s.trail) }

// NumLearnts returns the number of live (non-deleted) learned clauses.
func (s *Solver) NumLearnts() int { return len(s.learnts) }

// AddVariable registers one new Boolean variable and returns its id.
func (s *Solver) AddVariable() Var {
	v := Var(len(s.level))
	s.level = append(s.level, -1)
	s.reason = append(s.reason, ClauseRefNone)
	s.polarity = append(s.polarity, true) // default initial phase: True
	s.value = append(s.value, LUnknown, LUnknown)
	s.watches.grow()
	s.heap.grow()
	s.seen.Grow()
	s.heap.insert(v)
	return v
}

// decisionLevel is the current depth of the decision stack.
func (s *Solver) decisionLevel() int { return len(s.trailLim) }

// enqueue records l as assigned True at the current decision level with the
// given antecedent. It returns false if l was already assigned False
// (contradiction), true otherwise (including when l was already True).
func (s *Solver) enqueue(l Literal, reason ClauseRef) bool {
	switch s.value[l] {
	case LFalse:
		return false
	case LTrue:
		return true
	}
	v := l.Var()
	s.value[l] = LTrue
	s.value[l.Negate()] = LFalse
	s.level[v] = s.decisionLevel()
	s.reason[v] = reason
	s.trail = append(s.trail, l)
	return true
}

// AddClause adds an original clause. It performs construction-time
// simplifications: duplicate literals are dropped, a clause containing both
// a literal and its negation is a tautology and is discarded, and literals
// already falsified at the root level are removed. It returns false if this
// makes the formula unsatisfiable (an empty clause results, or the unit it
// reduces to contradicts an existing root-level assignment); the caller (the
// search driver's preflight) is responsible for surfacing that as Unsat.
func (s *Solver) AddClause(literals []Literal) bool {
	if s.unsat {
		return false
	}
	lits := append([]Literal(nil), literals...)
	seen := make(map[Literal]struct{}, len(lits))
	n := len(lits)
	for i := n - 1; i >= 0; i-- {
		l := lits[i]
		if _, ok := seen[l.Negate()]; ok {
			return true // tautology: l and ¬l both present, drop the clause
		}
		if _, ok := seen[l]; ok {
			n--
			lits[i], lits[n] = lits[n], lits[i]
			continue
		}
		seen[l] = struct{}{}
		switch s.value[l] {
		case LTrue:
			return true // already satisfied at the root level
		case LFalse:
			n--
			lits[i], lits[n] = lits[n], lits[i]
		}
	}
	lits = lits[:n]

	switch len(lits) {
	case 0:
		s.unsat = true
		return false
	case 1:
		if !s.enqueue(lits[0], ClauseRefNone) {
			s.unsat = true
			return false
		}
		return true
	default:
		ref := s.clauses.Add(lits, OriginOriginal)
		c := s.clauses.Get(ref)
		s.watch2(ref, c)
		return true
	}
}

// watch2 files watchers for a clause's first two literal positions.
func (s *Solver) watch2(ref ClauseRef, c *clauseRecord) {
	s.watches.file(c.literals[0].Negate(), watcher{clause: ref, blocker: c.literals[1]})
	s.watches.file(c.literals[1].Negate(), watcher{clause: ref, blocker: c.literals[0]})
}

// addLearnedClause stores a clause produced by conflict analysis. lits[0]
// must already be the asserting literal and, if len(lits) >= 2, lits[1] must
// already be the literal with maximal assignment level among lits[1:] (both
// postconditions of analyze()). It enqueues lits[0] and returns its
// ClauseRef (ClauseRefNone for a unit learned clause, which carries the
// Decision sentinel as its reason instead of a stored clause).
func (s *Solver) addLearnedClause(lits []Literal) ClauseRef {
	if len(lits) == 1 {
		s.enqueue(lits[0], ClauseRefNone)
		return ClauseRefNone
	}
	ref := s.clauses.Add(lits, OriginLearned)
	c := s.clauses.Get(ref)
	s.bumpClauseActivity(c)
	s.watch2(ref, c)
	s.learnts = append(s.learnts, ref)
	s.enqueue(lits[0], ref)
	return ref
}

// propagate drains the trail from qhead using two-watched-literal BCP. It
// returns ClauseRefNone if no conflict arose, or the id of a clause found
// falsified under the current assignment.
func (s *Solver) propagate() ClauseRef {
	for s.qhead < len(s.trail) {
		p := s.trail[s.qhead]
		s.qhead++
		s.Stats.Propagations++

		ws := s.watches.lists[p]
		falsified := p.Negate()

		j := 0
		for i := 0; i < len(ws); i++ {
			w := ws[i]
			c := s.clauses.Get(w.clause)

			if c.deleted {
				continue // step 1: drop, do not copy
			}
			if s.value[w.blocker] == LTrue {
				ws[j] = w // step 2: already satisfied, keep unchanged
				j++
				continue
			}

			lits := c.literals
			if lits[0] == falsified {
				lits[0], lits[1] = lits[1], lits[0] // step 3: normalize
			}

			if s.value[lits[0]] == LTrue {
				ws[j] = watcher{clause: w.clause, blocker: lits[0]} // step 4
				j++
				continue
			}

			// step 5: scan for a new literal to watch, resuming from
			// searchFrom (where the previous scan left off) instead of
			// always restarting at position 2 — long clauses with many
			// already-falsified literals would otherwise be rescanned from
			// the front on every visit.
			if c.searchFrom >= len(lits) {
				c.searchFrom = 2
			}
			found := false
			for k := c.searchFrom; k < len(lits); k++ {
				if s.value[lits[k]] != LFalse {
					c.searchFrom = k
					lits[1], lits[k] = lits[k], lits[1]
					s.watches.file(lits[1].Negate(), watcher{clause: w.clause, blocker: lits[0]})
					found = true
					break
				}
			}
			if !found {
				for k := 2; k < c.searchFrom; k++ {
					if s.value[lits[k]] != LFalse {
						c.searchFrom = k
						lits[1], lits[k] = lits[k], lits[1]
						s.watches.file(lits[1].Negate(), watcher{clause: w.clause, blocker: lits[0]})
						found = true
						break
					}
				}
			}
			if found {
				continue // filed elsewhere, do not keep this watcher
			}

			// step 6: unit or conflict.
			ws[j] = w
			j++
			if s.value[lits[0]] == LFalse {
				n := copy(ws[j:], ws[i+1:])
				s.watches.lists[p] = ws[:j+n]
				return w.clause
			}
			if !s.enqueue(lits[0], w.clause) {
				n := copy(ws[j:], ws[i+1:])
				s.watches.lists[p] = ws[:j+n]
				return w.clause
			}
		}
		s.watches.lists[p] = ws[:j]
	}
	return ClauseRefNone
}

// locked reports whether ref is currently serving as the reason of an
// assigned variable, and so must not be deleted.
func (s *Solver) locked(ref ClauseRef) bool {
	c := s.clauses.Get(ref)
	return s.reason[c.literals[0].Var()] == ref
}

func (s *Solver) bumpClauseActivity(c *clauseRecord) {
	c.activity += s.clauseInc
	if c.activity > 1e20 {
		for _, ref := range s.learnts {
			s.clauses.Get(ref).activity *= 1e-20
		}
		s.clauseInc *= 1e-20
	}
}

func (s *Solver) decayClauseActivity() { s.clauseInc *= 1 / s.clauseDecay }

func (s *Solver) bumpVarActivity(v Var) {
	s.varInc = s.heap.bump(v, s.varInc)
}

func (s *Solver) decayVarActivity() { s.varInc *= 1 / s.varDecay }

// undoOne pops the most recent trail entry, restores the variable's phase
// (only when PhaseSaving is enabled; otherwise the next decision always
// tries True), and makes it eligible for re-selection.
func (s *Solver) undoOne() {
	l := s.trail[len(s.trail)-1]
	v := l.Var()

	if s.opts.PhaseSaving {
		s.polarity[v] = l.IsPositive()
	} else {
		s.polarity[v] = true
	}
	s.value[l] = LUnknown
	s.value[l.Negate()] = LUnknown
	s.reason[v] = ClauseRefNone
	s.level[v] = -1
	s.trail = s.trail[:len(s.trail)-1]

	if !s.heap.contains(v) {
		s.heap.insert(v)
	}
}

// backtrack unwinds the trail until target is the current decision level:
// assignments made at levels above target are undone, those at levels up to
// and including target are kept.
func (s *Solver) backtrack(target int) {
	if target < 0 {
		invariantf("backtrack", "negative target level %d", target)
	}
	if target >= s.decisionLevel() {
		return
	}
	for len(s.trail) > s.trailLim[target] {
		s.undoOne()
	}
	s.qhead = len(s.trail)
	s.trailLim = s.trailLim[:target]
}

// assume opens a new decision level and enqueues l as a decision (reason
// None).
func (s *Solver) assume(l Literal) bool {
	s.trailLim = append(s.trailLim, len(s.trail))
	return s.enqueue(l, ClauseRefNone)
}

// pickBranchingVar pops the VSIDS heap, discarding entries whose variable
// has since become assigned (lazy deletion), until it finds an unassigned
// one or the heap empties.
func (s *Solver) pickBranchingVar() (Var, bool) {
	for {
		v, ok := s.heap.popMax()
		if !ok {
			return 0, false
		}
		if s.value[PosLiteral(v)] == LUnknown {
			return v, true
		}
	}
}

// pickFirstUnassigned scans for the lowest-indexed unassigned variable. It
// backs the static branching order used by ConfigCDCLBasic and DPLL.
func (s *Solver) pickFirstUnassigned() (Var, bool) {
	for v := Var(0); int(v) < s.NumVariables(); v++ {
		if s.value[PosLiteral(v)] == LUnknown {
			return v, true
		}
	}
	return 0, false
}

// decisionLiteral returns the literal to assume for v, using its saved
// phase (default True on first encounter).
func (s *Solver) decisionLiteral(v Var) Literal {
	if s.polarity[v] {
		return PosLiteral(v)
	}
	return NegLiteral(v)
}

// Model reports the current total assignment as one bool per variable
// (true = the variable is assigned True). It must only be called once every
// variable is assigned.
func (s *Solver) Model() []bool {
	model := make([]bool, s.NumVariables())
	for v := range model {
		model[v] = s.value[PosLiteral(Var(v))] == LTrue
	}
	return model
}
