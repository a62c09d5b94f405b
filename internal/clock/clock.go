// Package clock provides a frame-driven clock with deferred single-fire tasks.
package clock

import (
	"sort"
	"time"
)

// Clock is game time advanced explicitly by the frame loop.
// It is not safe for concurrent use; all calls happen on the update thread.
type Clock struct {
	now    time.Duration
	nextID uint64
	tasks  []*task
	batch  []*task // tasks firing in the current Advance
}

type task struct {
	id  uint64
	due time.Duration
	fn  func()
}

// Handle identifies a scheduled task.
type Handle struct {
	clock *Clock
	id    uint64
}

// New creates a clock at time zero.
func New() *Clock {
	return &Clock{}
}

// Now returns the elapsed game time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Schedule runs fn once, delay after the current time.
func (c *Clock) Schedule(delay time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	c.nextID++
	c.tasks = append(c.tasks, &task{id: c.nextID, due: c.now + delay, fn: fn})
	return Handle{clock: c, id: c.nextID}
}

// Pending returns the number of tasks that have not fired or been cancelled.
func (c *Clock) Pending() int {
	return len(c.tasks)
}

// Advance moves time forward by dt and fires every task that has come due,
// earliest first. Tasks scheduled while firing wait for the next Advance.
func (c *Clock) Advance(dt time.Duration) {
	if dt > 0 {
		c.now += dt
	}

	var due []*task
	keep := c.tasks[:0]
	for _, t := range c.tasks {
		if t.due <= c.now {
			due = append(due, t)
		} else {
			keep = append(keep, t)
		}
	}
	c.tasks = keep
	if len(due) == 0 {
		return
	}

	sort.SliceStable(due, func(i, j int) bool { return due[i].due < due[j].due })
	c.batch = due
	defer func() { c.batch = nil }()
	for _, t := range due {
		if t.fn == nil {
			// cancelled by an earlier task in this batch
			continue
		}
		fn := t.fn
		t.fn = nil
		fn()
	}
}

// Cancel stops the task from firing. Cancelling a fired or unknown task is a no-op.
func (h Handle) Cancel() {
	if h.clock == nil || h.id == 0 {
		return
	}
	h.clock.cancel(h.id)
}

// Valid reports whether the handle refers to a task that is still scheduled.
func (h Handle) Valid() bool {
	if h.clock == nil {
		return false
	}
	for _, t := range h.clock.tasks {
		if t.id == h.id {
			return true
		}
	}
	return false
}

func (c *Clock) cancel(id uint64) {
	for i, t := range c.tasks {
		if t.id == id {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			return
		}
	}
	// Already pulled into the firing batch.
	for _, t := range c.batch {
		if t.id == id {
			t.fn = nil
			return
		}
	}
}
