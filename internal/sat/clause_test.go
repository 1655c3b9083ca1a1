package sat

import "testing"

func TestClauseStore_AddGet(t *testing.T) {
	cs := newClauseStore()

	ref := cs.Add([]Literal{PosLiteral(0), NegLiteral(1)}, OriginOriginal)
	c := cs.Get(ref)

	if c.Len() != 2 {
		t.Errorf("Len(): want 2, got %d", c.Len())
	}
	if c.origin != OriginOriginal {
		t.Errorf("origin: want OriginOriginal, got %v", c.origin)
	}
	if c.deleted {
		t.Errorf("deleted: want false, got true")
	}
}

func TestClauseStore_MarkDeleted(t *testing.T) {
	cs := newClauseStore()
	ref := cs.Add([]Literal{PosLiteral(0), NegLiteral(1)}, OriginLearned)

	cs.MarkDeleted(ref)

	if !cs.Get(ref).deleted {
		t.Errorf("deleted: want true, got false")
	}
}

func TestWatchIndex_FileAndRemove(t *testing.T) {
	w := newWatchIndex()
	w.grow() // variable 0 -> literals 0,1

	a := PosLiteral(0)
	w.file(a, watcher{clause: 1, blocker: NegLiteral(0)})
	w.file(a, watcher{clause: 2, blocker: NegLiteral(0)})
	w.file(a, watcher{clause: 3, blocker: NegLiteral(0)})

	if got := len(w.lists[a]); got != 3 {
		t.Fatalf("len(lists[a]): want 3, got %d", got)
	}

	w.remove(a, 2)

	if got := len(w.lists[a]); got != 2 {
		t.Fatalf("len(lists[a]) after remove: want 2, got %d", got)
	}
	for _, wt := range w.lists[a] {
		if wt.clause == 2 {
			t.Errorf("remove(a, 2): clause 2 still present in %v", w.lists[a])
		}
	}
}
