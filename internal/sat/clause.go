package sat

// ClauseRef is a stable identifier into the clause arena. It is never a
// pointer, so the arena can grow (or a clause's literal order be rewritten
// in place by BCP) without invalidating reason[v] entries already recorded
// on the trail.
type ClauseRef int32

// ClauseRefNone is the Decision sentinel: no antecedent clause.
const ClauseRefNone ClauseRef = -1

// Origin distinguishes clauses present in the original problem from those
// derived by conflict analysis.
type Origin uint8

const (
	OriginOriginal Origin = iota
	OriginLearned
)

// clauseRecord is the arena-owned representation of one clause. Literals are
// mutated in place by BCP (position 0/1 swaps, position-2.. scans); nothing
// outside the arena should assume literal order is stable.
type clauseRecord struct {
	literals []Literal
	activity float64
	origin   Origin
	deleted  bool

	// searchFrom caches where the last scan for a replacement watch left
	// off, so a long clause with many falsified literals doesn't rescan
	// from position 2 every time it's touched.
	searchFrom int
}

func (c *clauseRecord) Len() int { return len(c.literals) }

// clauseStore owns clause bodies. It is an append-only arena indexed by
// ClauseRef; deletion is soft (see MarkDeleted) so that watcher entries
// referencing a ref remain valid pointers into the arena even after the
// clause they name has been logically discarded.
type clauseStore struct {
	clauses []clauseRecord
}

func newClauseStore() *clauseStore {
	return &clauseStore{}
}

// Add appends a new clause body and returns its stable identifier. The
// caller is responsible for filing watchers (clauses of length 1 are never
// watched; see Solver.AddClause).
func (cs *clauseStore) Add(literals []Literal, origin Origin) ClauseRef {
	ref := ClauseRef(len(cs.clauses))
	body := make([]Literal, len(literals))
	copy(body, literals)
	cs.clauses = append(cs.clauses, clauseRecord{
		literals:   body,
		origin:     origin,
		searchFrom: 2,
	})
	return ref
}

func (cs *clauseStore) Get(ref ClauseRef) *clauseRecord {
	return &cs.clauses[ref]
}

// MarkDeleted soft-deletes a clause. The caller must have already ensured
// the clause is not locking any trail entry (see Solver.locked) and has
// unwatched its first two literals.
func (cs *clauseStore) MarkDeleted(ref ClauseRef) {
	c := &cs.clauses[ref]
	c.deleted = true
	c.literals = nil // let the backing slice be collected
}

func (cs *clauseStore) Len() int { return len(cs.clauses) }
