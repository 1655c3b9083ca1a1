package sat

import "github.com/rhartert/yagh"

// varHeap is the VSIDS activity-ordered max-heap over variables. It is a
// thin adapter around yagh.IntMap, a generic min-heap with O(log n)
// Put/Pop and O(1) Contains: storing the *negated* activity turns the
// min-heap into the max-heap the branching heuristic needs.
//
// Variables currently assigned are allowed to be absent from the heap
// (lazy deletion): pickBranchingVar pops entries until it finds one that is
// still unassigned, and backtrack reinserts a variable's entry as soon as
// it becomes unassigned again.
type varHeap struct {
	activity []float64
	heap     *yagh.IntMap[float64]
}

func newVarHeap() *varHeap {
	return &varHeap{heap: yagh.New[float64](0)}
}

func (h *varHeap) grow() {
	h.activity = append(h.activity, 0)
	h.heap.GrowBy(1)
}

// insert files v into the heap at its current activity.
func (h *varHeap) insert(v Var) {
	h.heap.Put(int(v), -h.activity[v])
}

// update refreshes v's key after its activity changed, inserting it if it
// was not already present (e.g. it was popped earlier in pickBranchingVar
// without being reinserted yet).
func (h *varHeap) update(v Var) {
	h.heap.Put(int(v), -h.activity[v])
}

func (h *varHeap) contains(v Var) bool {
	return h.heap.Contains(int(v))
}

// popMax removes and returns the variable with maximal activity, or ok=false
// if the heap is empty.
func (h *varHeap) popMax() (Var, bool) {
	e, ok := h.heap.Pop()
	if !ok {
		return 0, false
	}
	return Var(e.Elem), true
}

const (
	varActivityRescaleThreshold = 1e100
	varActivityRescaleFactor    = 1e-100
)

// bump increases v's activity by inc, rescaling all activities (and inc
// itself) if the bump would overflow the rescale threshold, and keeps the
// heap key in sync if v is currently filed in it.
func (h *varHeap) bump(v Var, inc float64) float64 {
	h.activity[v] += inc
	if h.activity[v] > varActivityRescaleThreshold {
		for i := range h.activity {
			h.activity[i] *= varActivityRescaleFactor
		}
		inc *= varActivityRescaleFactor
	}
	if h.contains(v) {
		h.update(v)
	}
	return inc
}
