package geometry

import "github.com/Faultbox/wallclimb/pkg/math"

// Scene is a static world made of axis-aligned boxes.
//
// Capsule sweeps are answered by tracing the capsule's centre against each box
// inflated by the capsule extents, which treats the capsule as its bounding box.
type Scene struct {
	boxes []AABB
}

// NewScene creates a scene from the given boxes.
func NewScene(boxes ...AABB) *Scene {
	s := &Scene{}
	for _, b := range boxes {
		s.Add(b)
	}
	return s
}

// Add inserts a box into the scene.
func (s *Scene) Add(b AABB) {
	s.boxes = append(s.boxes, NewAABB(b.Min, b.Max))
}

// Boxes returns the scene's boxes.
func (s *Scene) Boxes() []AABB {
	return s.boxes
}

// RayCast implements Query.
func (s *Scene) RayCast(start, end math.Vec3) (Hit, bool) {
	return s.nearest(start, end, math.Vec3{})
}

// Sweep implements Query.
func (s *Scene) Sweep(shape Capsule, start, end math.Vec3) (Hit, bool) {
	extent := math.Vec3{X: shape.Radius, Y: shape.Radius, Z: shape.HalfHeight}
	return s.nearest(start, end, extent)
}

func (s *Scene) nearest(start, end, extent math.Vec3) (Hit, bool) {
	best := Hit{Time: 2}
	found := false
	for _, b := range s.boxes {
		t, n, ok := b.Expand(extent).IntersectSegment(start, end)
		if !ok || t >= best.Time {
			continue
		}
		best = Hit{Point: start.Lerp(end, t), Normal: n, Time: t}
		found = true
	}
	if !found {
		return Hit{}, false
	}
	return best, true
}
