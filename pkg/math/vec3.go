// Package math provides vector and rotation types for character movement.
package math

import "math"

// Vec3 is a 3D vector. X is forward, Y is right, Z is up.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize returns a unit vector, or the zero vector when v is (nearly) zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < Epsilon {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Lerp interpolates from v to other by t.
func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return Vec3{
		v.X + t*(other.X-v.X),
		v.Y + t*(other.Y-v.Y),
		v.Z + t*(other.Z-v.Z),
	}
}

// IsNearlyZero reports whether every component is within Epsilon of zero.
func (v Vec3) IsNearlyZero() bool {
	return abs32(v.X) < Epsilon && abs32(v.Y) < Epsilon && abs32(v.Z) < Epsilon
}

// ClampLength returns v scaled down so its length does not exceed max.
func (v Vec3) ClampLength(max float32) Vec3 {
	l := v.Length()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// Rotation returns the rotator that points forward along v. Roll is always zero.
func (v Vec3) Rotation() Rotator {
	yaw := math.Atan2(float64(v.Y), float64(v.X)) * radToDeg
	pitch := math.Atan2(float64(v.Z), math.Hypot(float64(v.X), float64(v.Y))) * radToDeg
	return Rotator{Pitch: float32(pitch), Yaw: float32(yaw)}
}

// XY returns the ground-plane components as Vec2.
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

// Epsilon is the tolerance used by the nearly-zero checks.
const Epsilon = 1e-6

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
