// Package geometry defines the scene queries the climbing controller consumes
// and a box-based scene that answers them.
package geometry

import "github.com/Faultbox/wallclimb/pkg/math"

// Hit describes where a ray or sweep first touched a surface.
type Hit struct {
	// Point is the impact point for rays. For sweeps it is the shape's centre
	// at the moment of impact.
	Point  math.Vec3
	Normal math.Vec3
	// Time is the fraction of the start→end segment travelled before impact.
	Time float32
}

// Capsule is a vertical capsule collision shape.
type Capsule struct {
	Radius     float32 `yaml:"radius"`
	HalfHeight float32 `yaml:"half_height"`
}

// Query answers geometry questions about the world the character lives in.
type Query interface {
	// RayCast traces a line from start to end and returns the first blocking hit.
	RayCast(start, end math.Vec3) (Hit, bool)
	// Sweep moves shape from start to end and returns the first blocking hit.
	Sweep(shape Capsule, start, end math.Vec3) (Hit, bool)
}

// MoveShape sweeps shape from start toward end and returns where it comes to
// rest, skin short of the first obstacle. A shape already touching an obstacle
// at start does not move. The bool reports whether the move was blocked.
func MoveShape(q Query, shape Capsule, start, end math.Vec3, skin float32) (math.Vec3, bool) {
	delta := end.Sub(start)
	if delta.IsNearlyZero() {
		return end, false
	}
	hit, ok := q.Sweep(shape, start, end)
	if !ok {
		return end, false
	}
	if hit.Time <= 0 {
		return start, true
	}
	rest := hit.Point.Sub(delta.Normalize().Scale(skin))
	if rest.Sub(start).Dot(delta) < 0 {
		return start, true
	}
	return rest, true
}
