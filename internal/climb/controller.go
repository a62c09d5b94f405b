package climb

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/wallclimb/internal/clock"
	"github.com/Faultbox/wallclimb/internal/geometry"
	"github.com/Faultbox/wallclimb/internal/logger"
	"github.com/Faultbox/wallclimb/internal/trace"
	"github.com/Faultbox/wallclimb/pkg/math"
)

// wallSkin is the gap kept between the capsule and obstacles while climbing.
const wallSkin = 0.1

// ErrMissingCollaborator is returned by New when a required dependency is nil.
var ErrMissingCollaborator = errors.New("climb: missing collaborator")

// Controller is the climbing state machine for one character.
// All methods run on the frame thread; it is not safe for concurrent use.
type Controller struct {
	tuning   Tuning
	query    geometry.Query
	animator Animator
	tracer   trace.Tracer
	log      *zap.Logger

	clock   *clock.Clock
	confirm *clock.Timer

	pose    Pose
	control math.Rotator // camera/control rotation driven by Look
	move    Movement
	grab    *poseTween

	wallEntries int
}

// Option configures a Controller.
type Option func(*Controller)

// WithTracer sends probe geometry to t.
func WithTracer(t trace.Tracer) Option {
	return func(c *Controller) { c.tracer = t }
}

// WithLogger replaces the default "climb" component logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithClock shares an existing frame clock instead of creating one.
func WithClock(clk *clock.Clock) Option {
	return func(c *Controller) { c.clock = clk }
}

// WithPose sets the starting pose.
func WithPose(p Pose) Option {
	return func(c *Controller) { c.pose = p }
}

// New creates a grounded controller. query and animator are required.
func New(tuning Tuning, query geometry.Query, animator Animator, opts ...Option) (*Controller, error) {
	if query == nil {
		return nil, fmt.Errorf("%w: geometry query", ErrMissingCollaborator)
	}
	if animator == nil {
		return nil, fmt.Errorf("%w: animator", ErrMissingCollaborator)
	}
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}

	c := &Controller{
		tuning:   tuning,
		query:    query,
		animator: animator,
		tracer:   trace.Nop{},
		log:      logger.Named("climb"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.clock == nil {
		c.clock = clock.New()
	}
	if c.tracer == nil {
		c.tracer = trace.Nop{}
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	c.confirm = clock.NewTimer(c.clock)
	c.move.apply(Grounded)
	c.control = math.Rotator{Yaw: c.pose.Rotation.Yaw}
	return c, nil
}

// MustNew is New for static wiring; it panics on error.
func MustNew(tuning Tuning, query geometry.Query, animator Animator, opts ...Option) *Controller {
	c, err := New(tuning, query, animator, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Mode returns the active locomotion mode.
func (c *Controller) Mode() Mode { return c.move.Mode }

// Pose returns the character transform.
func (c *Controller) Pose() Pose { return c.pose }

// SetPose overwrites the character transform. The base movement system calls
// this after integrating ground or air movement.
func (c *Controller) SetPose(p Pose) { c.pose = p }

// Movement exposes the locomotion state to the base movement system.
func (c *Controller) Movement() *Movement { return &c.move }

// ControlRotation returns the rotation driven by look input.
func (c *Controller) ControlRotation() math.Rotator { return c.control }

// Tuning returns the controller's constants.
func (c *Controller) Tuning() Tuning { return c.tuning }

// Clock returns the frame clock the controller schedules against.
func (c *Controller) Clock() *clock.Clock { return c.clock }

// WallEntries counts how many times the character has committed onto a wall.
func (c *Controller) WallEntries() int { return c.wallEntries }

// ConfirmPending reports whether a detected wall is waiting out the confirmation delay.
func (c *Controller) ConfirmPending() bool { return c.confirm.Pending() }

// Grabbing reports whether the snap-to-wall interpolation is still running.
func (c *Controller) Grabbing() bool { return c.grab != nil }

// Move handles a move input event. X is right, Y is forward.
func (c *Controller) Move(input math.Vec2) {
	if c.move.Mode == OnWall {
		c.PreMove(math.Vec2{Y: 1}, input.Y)
		c.PreMove(math.Vec2{X: 1}, input.X)
		return
	}

	forward, right, _ := c.control.YawOnly().Axes()
	c.move.AddInput(forward, input.Y)
	c.move.AddInput(right, input.X)
}

// Look handles a look input event: X turns, Y tilts the control rotation.
func (c *Controller) Look(input math.Vec2) {
	c.control.Yaw = math.NormalizeAngle(c.control.Yaw + input.X)
	limit := c.tuning.MaxLookPitch
	c.control.Pitch = math.ClampAngle(c.control.Pitch+input.Y, -limit, limit)
}

// Jump handles jump-pressed. While grounded it looks for a wall to climb.
// The jump itself belongs to the base movement system.
func (c *Controller) Jump() {
	if c.move.Mode == Grounded {
		c.DetectWall(math.Vec3{}, 0)
	}
}

// StopJumping handles jump-released, letting go of a wall if on one.
func (c *Controller) StopJumping() {
	c.ExitWall()
}

// SetGrounded is called by the base movement system when ground contact
// changes. It has no effect while on a wall.
func (c *Controller) SetGrounded(grounded bool) {
	if c.move.Mode == OnWall {
		return
	}
	next := Airborne
	if grounded {
		next = Grounded
	}
	if next != c.move.Mode {
		c.setMode(next)
	}
}

// Tick advances game time by dt: fires the confirmation timer, runs the
// grab interpolation and integrates on-wall movement.
func (c *Controller) Tick(dt time.Duration) {
	c.clock.Advance(dt)

	if c.grab != nil {
		pose, done := c.grab.at(c.clock.Now())
		c.pose = pose
		if done {
			c.grab = nil
		}
		// Input received mid-grab is dropped.
		c.move.TakeInput()
		return
	}

	if c.move.Mode != OnWall {
		return
	}

	secs := float32(dt.Seconds())
	vel := c.move.TakeInput().ClampLength(1).Scale(c.tuning.ClimbSpeed)
	start := c.pose.Position
	end, blocked := geometry.MoveShape(c.query, c.tuning.Capsule, start, start.Add(vel.Scale(secs)), wallSkin)
	if blocked && secs > 0 {
		vel = end.Sub(start).Scale(1 / secs)
	}
	c.move.Velocity = vel
	c.pose.Position = end

	_, right, up := c.pose.Axes()
	c.animator.SetSpeedOnWall(math.Vec2{X: vel.Dot(right), Y: vel.Dot(up)})
}

// setMode is the single place where the mode and its flags change.
func (c *Controller) setMode(next Mode) {
	prev := c.move.Mode
	c.move.apply(next)
	c.log.Info("mode changed",
		zap.Stringer("from", prev),
		zap.Stringer("to", next),
		zap.Duration("at", c.clock.Now()),
	)
}
