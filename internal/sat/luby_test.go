package sat

import "testing"

func TestLuby_ClassicalSequence(t *testing.T) {
	// 1, 1, 2, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2, 4, 8 (1-indexed)
	want := []uint64{1, 1, 2, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2, 4, 8}

	for i, w := range want {
		if got := luby(uint64(i + 1)); got != w {
			t.Errorf("luby(%d): want %d, got %d", i+1, w, got)
		}
	}
}

func TestRestartSchedule_Advances(t *testing.T) {
	rs := newRestartSchedule()
	budget := rs.untilRestart
	if budget <= 0 {
		t.Fatalf("initial untilRestart: want > 0, got %d", budget)
	}

	restarts := 0
	for i := int64(0); i < budget; i++ {
		if rs.onConflict() {
			restarts++
		}
	}

	if restarts != 1 {
		t.Errorf("restarts after %d conflicts: want 1, got %d", budget, restarts)
	}
}
