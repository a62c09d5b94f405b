package climb

import (
	"github.com/Faultbox/wallclimb/internal/geometry"
	"github.com/Faultbox/wallclimb/pkg/math"
)

// WallContact is the result of a confirmed two-probe detection.
// It lives only long enough to be handed to EnterWall.
type WallContact struct {
	Lower  geometry.Hit
	Upper  geometry.Hit
	Normal math.Vec3 // taken from the upper hit
}

// Animator receives presentation state. Calls are fire-and-forget.
type Animator interface {
	SetOnWall(onWall bool)
	SetSpeedOnWall(speed math.Vec2)
}
