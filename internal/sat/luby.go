package sat

// luby returns the i-th term (1-indexed) of the classical Luby sequence:
// 1, 1, 2, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2, 4, 8, ...
func luby(i uint64) uint64 {
	for k := uint64(1); k < 63; k++ {
		if i == (uint64(1)<<k)-1 {
			return uint64(1) << (k - 1)
		}
	}
	k := uint64(1)
	for {
		if (uint64(1) << (k - 1)) <= i && i < (uint64(1)<<k)-1 {
			return luby(i - (uint64(1) << (k - 1)) + 1)
		}
		k++
	}
}

// restartBase is the scale factor applied to the Luby sequence to obtain a
// conflict budget for each restart cycle.
const restartBase = 100

// restartSchedule tracks the Luby-scheduled restart policy of §4.7: a
// per-conflict countdown that, once exhausted, advances the restart counter
// and recomputes the next budget.
type restartSchedule struct {
	count        uint64
	untilRestart int64
}

func newRestartSchedule() *restartSchedule {
	rs := &restartSchedule{count: 1}
	rs.untilRestart = int64(restartBase) * int64(luby(rs.count))
	return rs
}

// onConflict decrements the countdown and reports whether a restart is due.
// If so, it advances the schedule for the next cycle.
func (rs *restartSchedule) onConflict() bool {
	rs.untilRestart--
	if rs.untilRestart > 0 {
		return false
	}
	rs.count++
	rs.untilRestart = int64(restartBase) * int64(luby(rs.count))
	return true
}
