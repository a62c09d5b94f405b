package clock

import "time"

// Timer is a single-slot deferred task. Setting it again supersedes the
// previous task: the old one is cancelled and its generation invalidated,
// so only the most recently set callback can ever run.
type Timer struct {
	clock  *Clock
	gen    uint64
	handle Handle
}

// NewTimer creates a timer bound to c.
func NewTimer(c *Clock) *Timer {
	return &Timer{clock: c}
}

// Set schedules fn after delay, replacing any pending task.
func (t *Timer) Set(delay time.Duration, fn func()) {
	t.Stop()
	gen := t.gen
	t.handle = t.clock.Schedule(delay, func() {
		if gen != t.gen {
			return
		}
		t.handle = Handle{}
		fn()
	})
}

// Stop cancels the pending task, if any.
func (t *Timer) Stop() {
	t.gen++
	t.handle.Cancel()
	t.handle = Handle{}
}

// Pending reports whether a task is waiting to fire.
func (t *Timer) Pending() bool {
	return t.handle.Valid()
}
