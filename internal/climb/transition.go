package climb

import (
	"go.uber.org/zap"

	"github.com/Faultbox/wallclimb/pkg/math"
)

// EnterWall commits the character onto the wall described by contact.
//
// The character is OnWall from this call on; the move to the stand-off point
// and the turn to face the wall are interpolated over GrabDuration by Tick.
// Calling it while already on a wall does nothing.
func (c *Controller) EnterWall(contact WallContact) {
	if c.move.Mode == OnWall {
		return
	}
	c.confirm.Stop()

	c.setMode(OnWall)
	c.animator.SetOnWall(true)
	c.move.StopImmediately()

	target := Pose{
		Position: contact.Upper.Point.Add(contact.Normal.Scale(c.tuning.StandOff)),
		Rotation: math.Rotator{
			Pitch: c.pose.Rotation.Pitch,
			Yaw:   math.NormalizeAngle(contact.Normal.Rotation().Yaw - 180),
			Roll:  c.pose.Rotation.Roll,
		},
	}
	c.grab = &poseTween{
		from:     c.pose,
		to:       target,
		start:    c.clock.Now(),
		duration: c.tuning.GrabDuration,
	}
	if c.tuning.GrabDuration <= 0 {
		c.pose = target
		c.grab = nil
	}
	c.wallEntries++

	c.log.Info("grabbed wall",
		zap.Any("target", target.Position),
		zap.Float32("yaw", target.Rotation.Yaw),
	)
}

// ExitWall lets go of the wall. The character keeps its position and
// velocity and continues under airborne rules. It is a no-op unless on a wall.
func (c *Controller) ExitWall() {
	if c.move.Mode != OnWall {
		return
	}
	c.grab = nil
	c.setMode(Airborne)
	c.animator.SetOnWall(false)
	c.animator.SetSpeedOnWall(math.Vec2{})
	c.log.Info("released wall", zap.Any("position", c.pose.Position))
}
