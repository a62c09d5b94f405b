package clock

import (
	"testing"
	"time"
)

func TestScheduleFiresWhenDue(t *testing.T) {
	c := New()
	fired := 0
	c.Schedule(200*time.Millisecond, func() { fired++ })

	c.Advance(100 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired = %d after 100ms, want 0", fired)
	}
	c.Advance(100 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d after 200ms, want 1", fired)
	}
	c.Advance(time.Second)
	if fired != 1 {
		t.Errorf("fired = %d, task must fire once", fired)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", c.Pending())
	}
}

func TestFiresInDueOrder(t *testing.T) {
	c := New()
	var order []int
	c.Schedule(30*time.Millisecond, func() { order = append(order, 3) })
	c.Schedule(10*time.Millisecond, func() { order = append(order, 1) })
	c.Schedule(20*time.Millisecond, func() { order = append(order, 2) })

	c.Advance(time.Second)
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("order = %v, want [1 2 3]", order)
	}
}

func TestCancel(t *testing.T) {
	c := New()
	fired := false
	h := c.Schedule(10*time.Millisecond, func() { fired = true })
	if !h.Valid() {
		t.Fatal("handle should be valid before firing")
	}
	h.Cancel()
	h.Cancel()
	c.Advance(time.Second)
	if fired {
		t.Error("cancelled task fired")
	}
	if h.Valid() {
		t.Error("handle should be invalid after cancel")
	}
}

func TestCancelFromSameBatch(t *testing.T) {
	c := New()
	fired := false
	var second Handle
	c.Schedule(10*time.Millisecond, func() { second.Cancel() })
	second = c.Schedule(20*time.Millisecond, func() { fired = true })

	c.Advance(time.Second)
	if fired {
		t.Error("task cancelled by an earlier task in the same frame still fired")
	}
}

func TestScheduledWhileFiringWaitsForNextAdvance(t *testing.T) {
	c := New()
	inner := false
	c.Schedule(0, func() {
		c.Schedule(0, func() { inner = true })
	})

	c.Advance(time.Millisecond)
	if inner {
		t.Fatal("task scheduled during Advance ran in the same Advance")
	}
	c.Advance(time.Millisecond)
	if !inner {
		t.Error("task scheduled during Advance never ran")
	}
}

func TestTimerSupersedes(t *testing.T) {
	c := New()
	timer := NewTimer(c)
	var got []string

	timer.Set(200*time.Millisecond, func() { got = append(got, "first") })
	c.Advance(150 * time.Millisecond)
	timer.Set(200*time.Millisecond, func() { got = append(got, "second") })

	c.Advance(100 * time.Millisecond) // first would have been due here
	if len(got) != 0 {
		t.Fatalf("got %v, superseded task fired", got)
	}
	if !timer.Pending() {
		t.Fatal("timer should still be pending")
	}

	c.Advance(100 * time.Millisecond)
	if len(got) != 1 || got[0] != "second" {
		t.Errorf("got %v, want [second]", got)
	}
	if timer.Pending() {
		t.Error("timer should not be pending after firing")
	}
}

func TestTimerStop(t *testing.T) {
	c := New()
	timer := NewTimer(c)
	fired := false
	timer.Set(10*time.Millisecond, func() { fired = true })
	timer.Stop()

	if timer.Pending() {
		t.Error("stopped timer should not be pending")
	}
	c.Advance(time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
}
