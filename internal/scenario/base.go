package scenario

import (
	"time"

	"github.com/Faultbox/wallclimb/internal/climb"
	"github.com/Faultbox/wallclimb/internal/config"
	"github.com/Faultbox/wallclimb/internal/geometry"
	"github.com/Faultbox/wallclimb/pkg/math"
)

// skin is the gap kept between the capsule and anything it walks into.
const skin = 0.1

// baseMovement is a minimal walking and falling integrator standing in for
// the engine's character movement. The ground is the plane z = groundZ.
type baseMovement struct {
	sim     config.SimConfig
	capsule geometry.Capsule
	query   geometry.Query
	groundZ float32

	vz float32
}

func newBaseMovement(sim config.SimConfig, capsule geometry.Capsule, query geometry.Query, groundZ float32) *baseMovement {
	return &baseMovement{sim: sim, capsule: capsule, query: query, groundZ: groundZ}
}

func (b *baseMovement) jump(c *climb.Controller) {
	if c.Mode() != climb.Grounded || b.sim.JumpSpeed <= 0 {
		return
	}
	b.vz = b.sim.JumpSpeed
	c.SetGrounded(false)
}

// step integrates ground and air movement. On-wall movement belongs to the controller.
func (b *baseMovement) step(c *climb.Controller, dt time.Duration) {
	mv := c.Movement()
	if mv.Mode == climb.OnWall {
		b.vz = 0
		return
	}

	secs := float32(dt.Seconds())
	pose := c.Pose()
	in := mv.TakeInput()
	in.Z = 0
	in = in.ClampLength(1)

	start := pose.Position
	pos := start
	if !in.IsNearlyZero() {
		pos, _ = b.sweep(pos, pos.Add(in.Scale(b.sim.WalkSpeed*secs)))
	}

	landed := false
	if mv.Mode == climb.Airborne {
		if !mv.Flying {
			b.vz -= b.sim.Gravity * secs
		}
		target := pos
		target.Z += b.vz * secs
		if target.Z <= b.groundZ && b.vz <= 0 {
			target.Z = b.groundZ
			landed = true
		}
		var blocked bool
		pos, blocked = b.sweep(pos, target)
		if blocked {
			b.vz = 0
			landed = false
		}
		if landed {
			b.vz = 0
		}
	}

	pose.Position = pos
	mv.Velocity = pos.Sub(start).Scale(1 / secs)
	if mv.OrientToMovement && !in.IsNearlyZero() {
		pose.Rotation.Yaw = in.Rotation().Yaw
	}
	c.SetPose(pose)

	if landed {
		c.SetGrounded(true)
	}
}

func (b *baseMovement) sweep(start, end math.Vec3) (math.Vec3, bool) {
	return geometry.MoveShape(b.query, b.capsule, start, end, skin)
}
