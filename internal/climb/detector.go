package climb

import (
	"go.uber.org/zap"

	"github.com/Faultbox/wallclimb/internal/geometry"
	"github.com/Faultbox/wallclimb/internal/trace"
	"github.com/Faultbox/wallclimb/pkg/math"
)

// DetectWall probes for a wall ahead of the character, shifted by offset.
//
// Both the lower and the upper probe must hit, with agreeing normals. When not
// on a wall, a confirmed detection (re)starts the confirmation timer that
// commits the character onto the wall. When already on a wall, it performs the
// on-wall move toward offset scaled by moveScale.
func (c *Controller) DetectWall(offset math.Vec3, moveScale float32) {
	contact, ok := c.probeWall(offset)
	if !ok {
		return
	}

	if c.move.Mode != OnWall {
		c.confirm.Set(c.tuning.ConfirmDelay, func() {
			c.EnterWall(contact)
		})
		c.log.Debug("wall detected",
			zap.Any("point", contact.Upper.Point),
			zap.Any("normal", contact.Normal),
		)
		return
	}

	// The offset already carries the sign of moveScale.
	c.moveOnWall(offset.Normalize(), abs(moveScale))
}

// probeWall runs the two forward probes from the anchors shifted by offset.
func (c *Controller) probeWall(offset math.Vec3) (WallContact, bool) {
	forward := c.pose.Rotation.Forward()

	lower, ok := c.probe(trace.KindLowerProbe, c.pose.Anchor(c.tuning.LowerAnchor).Add(offset), forward)
	if !ok {
		return WallContact{}, false
	}
	upper, ok := c.probe(trace.KindUpperProbe, c.pose.Anchor(c.tuning.UpperAnchor).Add(offset), forward)
	if !ok {
		return WallContact{}, false
	}

	// Probes straddling a corner or a ledge see different surfaces.
	if lower.Normal.Dot(upper.Normal) < c.tuning.NormalAgreement {
		c.log.Debug("wall rejected: probe normals disagree",
			zap.Any("lower", lower.Normal),
			zap.Any("upper", upper.Normal),
		)
		return WallContact{}, false
	}

	return WallContact{Lower: lower, Upper: upper, Normal: upper.Normal}, true
}

func (c *Controller) probe(kind trace.Kind, start, dir math.Vec3) (geometry.Hit, bool) {
	end := start.Add(dir.Scale(c.tuning.ProbeLength))
	hit, ok := c.query.RayCast(start, end)
	c.tracer.Trace(trace.Event{
		Time:   c.clock.Now().Seconds(),
		Kind:   kind,
		Start:  start,
		End:    end,
		Hit:    ok,
		Point:  hit.Point,
		Normal: hit.Normal,
	})
	return hit, ok
}
