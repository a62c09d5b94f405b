package scenario

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/wallclimb/internal/climb"
	"github.com/Faultbox/wallclimb/internal/config"
	"github.com/Faultbox/wallclimb/internal/geometry"
	"github.com/Faultbox/wallclimb/internal/input"
	"github.com/Faultbox/wallclimb/internal/logger"
	"github.com/Faultbox/wallclimb/pkg/math"
)

// Transition records a mode change observed during a run.
type Transition struct {
	At       time.Duration
	From, To climb.Mode
}

// Result is the outcome of a scenario run.
type Result struct {
	Name        string
	Steps       int
	Elapsed     time.Duration
	Mode        climb.Mode
	Pose        climb.Pose
	WallEntries int
	Transitions []Transition

	// Animator notifications
	OnWallCalls []bool
	SpeedCalls  int
	LastSpeed   math.Vec2
}

// recordingAnimator keeps the presentation calls made by the controller.
type recordingAnimator struct {
	onWall    []bool
	speeds    int
	lastSpeed math.Vec2
}

func (a *recordingAnimator) SetOnWall(v bool) { a.onWall = append(a.onWall, v) }

func (a *recordingAnimator) SetSpeedOnWall(s math.Vec2) {
	a.speeds++
	a.lastSpeed = s
}

// Run plays s against a fresh controller using cfg's tuning and stepping.
// Extra options are passed to the controller (tracer, logger).
func Run(s *Scenario, cfg *config.Config, opts ...climb.Option) (*Result, error) {
	if cfg.Sim.TickRate <= 0 {
		return nil, fmt.Errorf("tick rate must be positive, got %d", cfg.Sim.TickRate)
	}
	log := logger.Named("scenario").With(zap.String("scenario", s.Name))

	scene := geometry.NewScene(s.Boxes...)
	anim := &recordingAnimator{}
	opts = append([]climb.Option{climb.WithPose(s.Start)}, opts...)
	ctrl, err := climb.New(cfg.Climb, scene, anim, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating controller: %w", err)
	}

	r := &runner{
		ctrl:  ctrl,
		base:  newBaseMovement(cfg.Sim, cfg.Climb.Capsule, scene, s.Start.Position.Z),
		queue: input.NewQueue(),
		mode:  ctrl.Mode(),
	}

	dt := time.Second / time.Duration(cfg.Sim.TickRate)
	steps := int((s.Duration + dt - 1) / dt)
	log.Info("scenario started",
		zap.Duration("duration", s.Duration),
		zap.Duration("dt", dt),
		zap.Int("steps", steps),
		zap.Int("boxes", len(s.Boxes)),
	)

	next := 0
	for i := 0; i < steps; i++ {
		for next < len(s.Timeline) && s.Timeline[next].At <= r.now {
			r.schedule(s.Timeline[next])
			next++
		}
		r.step(dt)
	}

	res := &Result{
		Name:        s.Name,
		Steps:       steps,
		Elapsed:     r.now,
		Mode:        ctrl.Mode(),
		Pose:        ctrl.Pose(),
		WallEntries: ctrl.WallEntries(),
		Transitions: r.transitions,
		OnWallCalls: anim.onWall,
		SpeedCalls:  anim.speeds,
		LastSpeed:   anim.lastSpeed,
	}
	log.Info("scenario finished",
		zap.Stringer("mode", res.Mode),
		zap.Int("wall_entries", res.WallEntries),
		zap.Int("transitions", len(res.Transitions)),
	)
	return res, nil
}

// runner owns the per-run state between steps.
type runner struct {
	ctrl  *climb.Controller
	base  *baseMovement
	queue *input.Queue

	// held is the move axis, re-sent every step like a bound stick.
	held math.Vec2

	now         time.Duration
	mode        climb.Mode
	transitions []Transition
}

func (r *runner) schedule(st Step) {
	if st.Type() == input.EventMove {
		r.held = st.Axis
		return
	}
	r.queue.Push(input.Event{Type: st.Type(), Axis: st.Axis})
}

func (r *runner) step(dt time.Duration) {
	if !r.held.IsZero() {
		r.queue.Push(input.Event{Type: input.EventMove, Axis: r.held})
	}
	r.queue.Drain(r)
	r.observe()

	r.base.step(r.ctrl, dt)
	r.ctrl.Tick(dt)
	r.now += dt
	r.observe()
}

func (r *runner) observe() {
	if m := r.ctrl.Mode(); m != r.mode {
		r.transitions = append(r.transitions, Transition{At: r.now, From: r.mode, To: m})
		r.mode = m
	}
}

func (r *runner) Move(axis math.Vec2) { r.ctrl.Move(axis) }
func (r *runner) Look(axis math.Vec2) { r.ctrl.Look(axis) }

// Jump lets the controller look for a wall before the base movement leaves the ground.
func (r *runner) Jump() {
	r.ctrl.Jump()
	r.base.jump(r.ctrl)
	r.observe()
}

func (r *runner) StopJumping() { r.ctrl.StopJumping() }
