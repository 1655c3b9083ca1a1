package sat

import "fmt"

// InvariantViolation is raised (via panic) when a watch-list or trail
// invariant fails to hold. A correct solver run must never trigger this;
// recovering from it silently would hide a bug in BCP or conflict analysis,
// so the core never attempts to.
type InvariantViolation struct {
	Where string
	Msg   string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("internal invariant violated in %s: %s", e.Where, e.Msg)
}

func invariantf(where, format string, args ...any) {
	panic(&InvariantViolation{Where: where, Msg: fmt.Sprintf(format, args...)})
}
