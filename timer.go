package genie

// timer is a cancellable countdown on the driver's timeline. Scheduling
// replaces any pending countdown, so a stale deadline can never fire after
// it has been overwritten or cancelled. There is no wall clock involved:
// the countdown only advances when the driver is stepped.
type timer struct {
	armed     bool
	remaining float64
}

// schedule arms the timer to fire after delay seconds, replacing any
// pending countdown.
func (t *timer) schedule(delay float64) {
	t.armed = true
	t.remaining = delay
}

// cancel disarms the timer. Cancelling an idle timer is a no-op.
func (t *timer) cancel() {
	t.armed = false
}

// pending reports whether a countdown is armed.
func (t *timer) pending() bool {
	return t.armed
}

// tick advances the countdown by dt seconds and reports whether it fired
// on this step. A timer fires at most once per schedule.
func (t *timer) tick(dt float64) bool {
	if !t.armed {
		return false
	}
	t.remaining -= dt
	if t.remaining > 0 {
		return false
	}
	t.armed = false
	return true
}
