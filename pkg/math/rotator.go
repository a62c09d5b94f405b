package math

import "math"

// Rotator is an orientation in degrees.
// Yaw turns about Z, Pitch tilts the forward axis up, Roll spins about forward.
type Rotator struct {
	Pitch, Yaw, Roll float32
}

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// Axes returns the forward, right and up basis vectors of r.
func (r Rotator) Axes() (forward, right, up Vec3) {
	sp, cp := sincos(r.Pitch)
	sy, cy := sincos(r.Yaw)
	sr, cr := sincos(r.Roll)

	forward = Vec3{cp * cy, cp * sy, sp}
	right = Vec3{sr*sp*cy - cr*sy, sr*sp*sy + cr*cy, -sr * cp}
	up = Vec3{-(cr*sp*cy + sr*sy), cy*sr - cr*sp*sy, cr * cp}
	return forward, right, up
}

// Forward returns the forward basis vector.
func (r Rotator) Forward() Vec3 {
	f, _, _ := r.Axes()
	return f
}

// Right returns the right basis vector.
func (r Rotator) Right() Vec3 {
	_, rt, _ := r.Axes()
	return rt
}

// Up returns the up basis vector.
func (r Rotator) Up() Vec3 {
	_, _, u := r.Axes()
	return u
}

// YawOnly returns r with pitch and roll cleared.
func (r Rotator) YawOnly() Rotator {
	return Rotator{Yaw: r.Yaw}
}

// Normalized returns r with every angle wrapped into (-180, 180].
func (r Rotator) Normalized() Rotator {
	return Rotator{
		Pitch: NormalizeAngle(r.Pitch),
		Yaw:   NormalizeAngle(r.Yaw),
		Roll:  NormalizeAngle(r.Roll),
	}
}

// Equals reports whether both rotators describe the same angles within tolerance degrees.
func (r Rotator) Equals(other Rotator, tolerance float32) bool {
	d := other.Sub(r).Normalized()
	return abs32(d.Pitch) <= tolerance && abs32(d.Yaw) <= tolerance && abs32(d.Roll) <= tolerance
}

// Sub returns the per-angle difference r - other without wrapping.
func (r Rotator) Sub(other Rotator) Rotator {
	return Rotator{r.Pitch - other.Pitch, r.Yaw - other.Yaw, r.Roll - other.Roll}
}

// LerpRotator interpolates each angle from a to b along the shortest arc.
func LerpRotator(a, b Rotator, t float32) Rotator {
	d := b.Sub(a).Normalized()
	return Rotator{
		Pitch: a.Pitch + d.Pitch*t,
		Yaw:   a.Yaw + d.Yaw*t,
		Roll:  a.Roll + d.Roll*t,
	}.Normalized()
}

// NormalizeAngle wraps an angle in degrees into (-180, 180].
func NormalizeAngle(deg float32) float32 {
	a := float32(math.Mod(float64(deg), 360))
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	return a
}

// ClampAngle clamps deg into [min, max].
func ClampAngle(deg, min, max float32) float32 {
	if deg < min {
		return min
	}
	if deg > max {
		return max
	}
	return deg
}

func sincos(deg float32) (float32, float32) {
	s, c := math.Sincos(float64(deg) * degToRad)
	return float32(s), float32(c)
}
