// Package trace carries debug geometry (probe lines and hit points) out of the
// climbing controller. It replaces inline debug drawing with a pluggable sink.
package trace

import (
	"github.com/Faultbox/wallclimb/pkg/math"
)

// Kind identifies which query produced an event.
type Kind string

const (
	KindLowerProbe Kind = "lower_probe"
	KindUpperProbe Kind = "upper_probe"
	KindSweep      Kind = "sweep"
)

// Event is one traced geometry query.
type Event struct {
	Time   float64   `json:"t"` // seconds of game time
	Kind   Kind      `json:"kind"`
	Start  math.Vec3 `json:"start"`
	End    math.Vec3 `json:"end"`
	Hit    bool      `json:"hit"`
	Point  math.Vec3 `json:"point"`
	Normal math.Vec3 `json:"normal"`
}

// Tracer receives trace events. Implementations must not block the caller.
type Tracer interface {
	Trace(ev Event)
}

// Nop discards every event.
type Nop struct{}

// Trace implements Tracer.
func (Nop) Trace(Event) {}

// Fanout forwards each event to every tracer in order.
type Fanout []Tracer

// Trace implements Tracer.
func (f Fanout) Trace(ev Event) {
	for _, t := range f {
		t.Trace(ev)
	}
}
