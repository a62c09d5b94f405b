// Package input routes semantic input events to a character controller.
package input

import (
	"fmt"

	"github.com/Faultbox/wallclimb/pkg/math"
)

// EventType identifies a semantic input event.
type EventType int

const (
	EventNone EventType = iota
	EventMove
	EventLook
	EventJumpPressed
	EventJumpReleased
)

var eventNames = map[EventType]string{
	EventNone:         "none",
	EventMove:         "move",
	EventLook:         "look",
	EventJumpPressed:  "jump_pressed",
	EventJumpReleased: "jump_released",
}

// String returns the event name used in scenario files.
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// ParseEventType converts a scenario event name to an EventType.
func ParseEventType(name string) (EventType, error) {
	for t, n := range eventNames {
		if n == name && t != EventNone {
			return t, nil
		}
	}
	return EventNone, fmt.Errorf("unknown input event %q", name)
}

// Event is one semantic input event. Axis is used by move and look.
type Event struct {
	Type EventType
	Axis math.Vec2
}

// Handler consumes semantic input.
type Handler interface {
	Move(axis math.Vec2)
	Look(axis math.Vec2)
	Jump()
	StopJumping()
}

// Dispatch delivers ev to h.
func Dispatch(h Handler, ev Event) {
	switch ev.Type {
	case EventMove:
		h.Move(ev.Axis)
	case EventLook:
		h.Look(ev.Axis)
	case EventJumpPressed:
		h.Jump()
	case EventJumpReleased:
		h.StopJumping()
	}
}

// Queue buffers events between frames.
type Queue struct {
	events []Event
}

// NewQueue creates an empty event queue.
func NewQueue() *Queue {
	return &Queue{
		events: make([]Event, 0, 16),
	}
}

// Push appends an event for the next frame.
func (q *Queue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain dispatches every buffered event to h in arrival order and clears the queue.
func (q *Queue) Drain(h Handler) int {
	n := len(q.events)
	for i := 0; i < n; i++ {
		Dispatch(h, q.events[i])
	}
	q.events = q.events[:0]
	return n
}
