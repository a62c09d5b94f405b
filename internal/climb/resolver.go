package climb

import (
	"github.com/Faultbox/wallclimb/internal/trace"
	"github.com/Faultbox/wallclimb/pkg/math"
)

// WallAxis is the wall-relative axis picked for an input direction.
type WallAxis int

const (
	AxisNone       WallAxis = iota
	AxisHorizontal          // across the wall, along the character's right
	AxisVertical            // up or down the wall, along the character's up
)

// ClassifyWallAxis picks the wall axis for an input direction. X wins over Y;
// a direction with neither component above threshold, such as a diagonal,
// maps to AxisNone.
func ClassifyWallAxis(input math.Vec2, threshold float32) WallAxis {
	switch {
	case abs(input.X) > threshold:
		return AxisHorizontal
	case abs(input.Y) > threshold:
		return AxisVertical
	default:
		return AxisNone
	}
}

// WallDirection returns the world-space direction of the wall axis for the
// character's current orientation.
func (c *Controller) WallDirection(axis WallAxis) (math.Vec3, bool) {
	_, right, up := c.pose.Axes()
	switch axis {
	case AxisHorizontal:
		return right, true
	case AxisVertical:
		return up, true
	default:
		return math.Vec3{}, false
	}
}

// PreMove resolves one on-wall move request. The input direction selects a
// wall axis; the capsule is swept toward the look-ahead point and clamped at
// obstacles; then the wall is re-probed at the clamped offset, which moves the
// character only if the wall is still there. Ignored unless on a wall.
func (c *Controller) PreMove(inputDirection math.Vec2, moveScale float32) {
	if c.move.Mode != OnWall || moveScale == 0 {
		return
	}
	dir, ok := c.WallDirection(ClassifyWallAxis(inputDirection, c.tuning.AxisThreshold))
	if !ok {
		return
	}

	start := c.pose.Position
	end := start.Add(dir.Scale(moveScale * c.tuning.MoveStep))

	dest := end
	hit, blocked := c.query.Sweep(c.tuning.Capsule, start, end)
	if blocked {
		dest = hit.Point
	}
	c.tracer.Trace(trace.Event{
		Time:   c.clock.Now().Seconds(),
		Kind:   trace.KindSweep,
		Start:  start,
		End:    end,
		Hit:    blocked,
		Point:  hit.Point,
		Normal: hit.Normal,
	})

	c.DetectWall(dest.Sub(start), moveScale)
}

// moveOnWall feeds the confirmed on-wall move into the movement input.
func (c *Controller) moveOnWall(direction math.Vec3, scale float32) {
	c.move.AddInput(direction, scale)
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
