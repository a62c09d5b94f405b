package input

import (
	"testing"

	"github.com/Faultbox/wallclimb/pkg/math"
)

type recorder struct {
	calls []string
	axes  []math.Vec2
}

func (r *recorder) Move(a math.Vec2) { r.calls = append(r.calls, "move"); r.axes = append(r.axes, a) }
func (r *recorder) Look(a math.Vec2) { r.calls = append(r.calls, "look"); r.axes = append(r.axes, a) }
func (r *recorder) Jump()            { r.calls = append(r.calls, "jump") }
func (r *recorder) StopJumping()     { r.calls = append(r.calls, "stop_jumping") }

func TestParseEventType(t *testing.T) {
	for _, typ := range []EventType{EventMove, EventLook, EventJumpPressed, EventJumpReleased} {
		got, err := ParseEventType(typ.String())
		if err != nil || got != typ {
			t.Errorf("ParseEventType(%q) = %v, %v", typ.String(), got, err)
		}
	}
	if _, err := ParseEventType("crouch"); err == nil {
		t.Error("ParseEventType(crouch) should fail")
	}
	if _, err := ParseEventType("none"); err == nil {
		t.Error("ParseEventType(none) should fail")
	}
}

func TestQueueDrainsInOrder(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Type: EventJumpPressed})
	q.Push(Event{Type: EventMove, Axis: math.Vec2{X: 1}})
	q.Push(Event{Type: EventLook, Axis: math.Vec2{Y: -2}})
	q.Push(Event{Type: EventJumpReleased})
	q.Push(Event{Type: EventNone})

	r := &recorder{}
	if n := q.Drain(r); n != 5 {
		t.Errorf("Drain() = %d, want 5", n)
	}
	want := []string{"jump", "move", "look", "stop_jumping"}
	if len(r.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", r.calls, want)
	}
	for i := range want {
		if r.calls[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, r.calls[i], want[i])
		}
	}
	if r.axes[0] != (math.Vec2{X: 1}) || r.axes[1] != (math.Vec2{Y: -2}) {
		t.Errorf("axes = %v", r.axes)
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d after drain, want 0", q.Len())
	}
}
