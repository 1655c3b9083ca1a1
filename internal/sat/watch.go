package sat

// watcher is one entry in a literal's watch list: the clause that must be
// revisited when the watched literal becomes true, plus a blocker literal
// (some other literal of that clause) that lets propagate() skip touching
// the clause body at all when the blocker is already satisfied.
type watcher struct {
	clause  ClauseRef
	blocker Literal
}

// watchIndex holds, for every literal, the watchers filed under it.
type watchIndex struct {
	lists [][]watcher
}

func newWatchIndex() *watchIndex {
	return &watchIndex{}
}

// grow extends the index to cover one more variable (two more literals).
func (w *watchIndex) grow() {
	w.lists = append(w.lists, nil, nil)
}

func (w *watchIndex) file(on Literal, wt watcher) {
	w.lists[on] = append(w.lists[on], wt)
}

// remove drops the first watcher on `on` whose clause is ref. Used when a
// clause is deleted (see Solver.deleteClause).
func (w *watchIndex) remove(on Literal, ref ClauseRef) {
	list := w.lists[on]
	for i, wt := range list {
		if wt.clause == ref {
			list[i] = list[len(list)-1]
			w.lists[on] = list[:len(list)-1]
			return
		}
	}
}
