package climb

import (
	"time"

	"github.com/Faultbox/wallclimb/pkg/math"
)

// Pose is the character's transform.
type Pose struct {
	Position math.Vec3    `yaml:"position"`
	Rotation math.Rotator `yaml:"rotation"`
}

// Axes returns the forward, right and up basis vectors of the pose.
func (p Pose) Axes() (forward, right, up math.Vec3) {
	return p.Rotation.Axes()
}

// Anchor converts a point in the character's local frame to world space.
func (p Pose) Anchor(local math.Vec3) math.Vec3 {
	f, r, u := p.Axes()
	return p.Position.
		Add(f.Scale(local.X)).
		Add(r.Scale(local.Y)).
		Add(u.Scale(local.Z))
}

// poseTween moves a pose linearly toward a target over a fixed duration,
// measured against the frame clock.
type poseTween struct {
	from, to Pose
	start    time.Duration
	duration time.Duration
}

// at returns the interpolated pose at clock time now and whether the tween is done.
func (tw *poseTween) at(now time.Duration) (Pose, bool) {
	elapsed := now - tw.start
	if tw.duration <= 0 || elapsed >= tw.duration {
		return tw.to, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	t := float32(elapsed) / float32(tw.duration)
	return Pose{
		Position: tw.from.Position.Lerp(tw.to.Position, t),
		Rotation: math.LerpRotator(tw.from.Rotation, tw.to.Rotation, t),
	}, false
}
