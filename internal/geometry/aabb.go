package geometry

import (
	gomath "math"

	"github.com/Faultbox/wallclimb/pkg/math"
)

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3 `yaml:"min"`
	Max math.Vec3 `yaml:"max"`
}

// NewAABB creates an AABB from two corners, handling swapped coordinates.
func NewAABB(a, b math.Vec3) AABB {
	box := AABB{Min: a, Max: b}
	if box.Min.X > box.Max.X {
		box.Min.X, box.Max.X = box.Max.X, box.Min.X
	}
	if box.Min.Y > box.Max.Y {
		box.Min.Y, box.Max.Y = box.Max.Y, box.Min.Y
	}
	if box.Min.Z > box.Max.Z {
		box.Min.Z, box.Max.Z = box.Max.Z, box.Min.Z
	}
	return box
}

// Expand returns the box grown by e on each side of every axis.
func (b AABB) Expand(e math.Vec3) AABB {
	return AABB{Min: b.Min.Sub(e), Max: b.Max.Add(e)}
}

// Contains reports whether p lies inside or on the box.
func (b AABB) Contains(p math.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// IntersectSegment tests the segment start→end against the box with the slab method.
// It returns the entry fraction along the segment and the normal of the face entered.
// A segment that starts inside the box hits at fraction 0 with a normal opposing travel.
func (b AABB) IntersectSegment(start, end math.Vec3) (t float32, normal math.Vec3, hit bool) {
	dir := end.Sub(start)
	if b.Contains(start) {
		return 0, dir.Normalize().Scale(-1), true
	}

	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin := [3]float32{start.X, start.Y, start.Z}
	d := [3]float32{dir.X, dir.Y, dir.Z}
	lo := [3]float32{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float32{b.Max.X, b.Max.Y, b.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			// Parallel to this slab: miss unless already between the planes
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, math.Vec3{}, false
			}
			continue
		}

		t1 := (lo[axis] - origin[axis]) / d[axis]
		t2 := (hi[axis] - origin[axis]) / d[axis]
		sign := float32(-1) // entering through the min face
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			normal = axisVector(axis, sign)
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmax < tmin || tmin < 0 || tmin > 1 {
		return 0, math.Vec3{}, false
	}
	return tmin, normal, true
}

func axisVector(axis int, sign float32) math.Vec3 {
	switch axis {
	case 0:
		return math.Vec3{X: sign}
	case 1:
		return math.Vec3{Y: sign}
	default:
		return math.Vec3{Z: sign}
	}
}
