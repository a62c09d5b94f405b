package climb

import (
	"testing"
	"time"

	"github.com/Faultbox/wallclimb/internal/geometry"
	"github.com/Faultbox/wallclimb/internal/trace"
	"github.com/Faultbox/wallclimb/pkg/math"
)

func TestClassifyWallAxis(t *testing.T) {
	tests := []struct {
		input math.Vec2
		want  WallAxis
	}{
		{math.Vec2{X: 0.95}, AxisHorizontal},
		{math.Vec2{X: -0.95}, AxisHorizontal},
		{math.Vec2{Y: 0.95}, AxisVertical},
		{math.Vec2{Y: -1}, AxisVertical},
		{math.Vec2{X: 0.5, Y: 0.5}, AxisNone},
		{math.Vec2{X: 0.9}, AxisNone},
		{math.Vec2{X: 0.95, Y: 0.95}, AxisHorizontal},
		{math.Vec2{}, AxisNone},
	}
	for _, tt := range tests {
		if got := ClassifyWallAxis(tt.input, 0.9); got != tt.want {
			t.Errorf("ClassifyWallAxis(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPreMoveResolvesAxis(t *testing.T) {
	tests := []struct {
		name  string
		input math.Vec2
		want  math.Vec3
	}{
		{"right", math.Vec2{X: 0.95}, math.Vec3{Y: 1}},
		{"up", math.Vec2{Y: 0.95}, math.Vec3{Z: 1}},
		{"diagonal", math.Vec2{X: 0.5, Y: 0.5}, math.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestController(t, geometry.NewScene(plainWall()))
			climbOn(t, c)

			c.PreMove(tt.input, 1)
			got := c.Movement().PendingInput()
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) || !near(got.Z, tt.want.Z) {
				t.Errorf("pending input = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPreMoveMovesOnTick(t *testing.T) {
	c, anim := newTestController(t, geometry.NewScene(plainWall()))
	climbOn(t, c)
	before := c.Pose().Position

	c.PreMove(math.Vec2{X: 1}, 1)
	c.Tick(100 * time.Millisecond)

	after := c.Pose().Position
	if !near(after.Y-before.Y, 60) || !near(after.X, before.X) || !near(after.Z, before.Z) {
		t.Errorf("moved %v -> %v, want +60 along Y", before, after)
	}
	speed := anim.speeds[len(anim.speeds)-1]
	if !near(speed.X, 600) || !near(speed.Y, 0) {
		t.Errorf("SetSpeedOnWall = %v, want (600,0)", speed)
	}

	// Nothing pending: the character holds still.
	c.Tick(100 * time.Millisecond)
	if c.Pose().Position != after {
		t.Error("character drifted without input")
	}
}

func TestPreMoveNegativeScale(t *testing.T) {
	c, _ := newTestController(t, geometry.NewScene(plainWall()))
	climbOn(t, c)
	before := c.Pose().Position

	c.PreMove(math.Vec2{Y: 1}, -0.5)
	c.Tick(100 * time.Millisecond)

	if dz := c.Pose().Position.Z - before.Z; !near(dz, -30) {
		t.Errorf("moved %v along Z, want -30", dz)
	}
}

func TestPreMoveRejectsWallEdge(t *testing.T) {
	// A narrow pillar: the probes confirm it at y=0 but not 50 units right.
	pillar := box(150, -30, -1000, 250, 30, 1000)
	c, _ := newTestController(t, geometry.NewScene(pillar))
	climbOn(t, c)
	before := c.Pose().Position

	c.PreMove(math.Vec2{X: 1}, 1)
	if in := c.Movement().PendingInput(); in != (math.Vec3{}) {
		t.Errorf("pending input = %v, want none past the edge", in)
	}
	c.Tick(100 * time.Millisecond)
	if c.Pose().Position != before {
		t.Errorf("position changed %v -> %v, must not slide off the edge", before, c.Pose().Position)
	}

	// The other way is still wall.
	c.PreMove(math.Vec2{X: 1}, -0.5)
	if in := c.Movement().PendingInput(); !near(in.Y, -0.5) {
		t.Errorf("pending input = %v, want -0.5 along Y", in)
	}
}

func TestPreMoveClampsAtObstacle(t *testing.T) {
	// A buttress sticking out of the wall to the character's right.
	buttress := box(60, 100, -1000, 150, 200, 1000)
	tracer := &collectTracer{}
	c, _ := newTestController(t, geometry.NewScene(plainWall(), buttress), WithTracer(tracer))
	climbOn(t, c)
	tracer.events = nil

	c.PreMove(math.Vec2{X: 1}, 2)

	if len(tracer.events) != 3 {
		t.Fatalf("traced %d events, want sweep + 2 probes", len(tracer.events))
	}
	sweep := tracer.events[0]
	if sweep.Kind != trace.KindSweep || !sweep.Hit {
		t.Fatalf("sweep = %+v, want a blocking hit", sweep)
	}
	if !near(sweep.Point.Y, 58) {
		t.Errorf("sweep clamp = %v, want y=58", sweep.Point)
	}
	lower := tracer.events[1]
	if !near(lower.Start.Y, 58) {
		t.Errorf("re-probe started at %v, want y=58", lower.Start)
	}
	if in := c.Movement().PendingInput(); !near(in.Y, 2) {
		t.Errorf("pending input = %v, want 2 along Y", in)
	}
}

func TestPreMoveIgnoredOffWall(t *testing.T) {
	c, _ := newTestController(t, geometry.NewScene(plainWall()))
	c.PreMove(math.Vec2{X: 1}, 1)
	if c.ConfirmPending() {
		t.Error("PreMove while grounded must not start a grab")
	}
	if in := c.Movement().PendingInput(); in != (math.Vec3{}) {
		t.Errorf("pending input = %v, want none", in)
	}
}

func TestMoveOnWallMapsAxes(t *testing.T) {
	c, _ := newTestController(t, geometry.NewScene(plainWall()))
	climbOn(t, c)

	c.Move(math.Vec2{Y: 1})
	in := c.Movement().TakeInput()
	if !near(in.Z, 1) || !near(in.Y, 0) {
		t.Errorf("forward input on wall = %v, want up (0,0,1)", in)
	}

	c.Move(math.Vec2{X: -1})
	in = c.Movement().TakeInput()
	if !near(in.Y, -1) || !near(in.Z, 0) {
		t.Errorf("left input on wall = %v, want (0,-1,0)", in)
	}

	// Each stick axis is resolved on its own, so a diagonal stick climbs diagonally.
	c.Move(math.Vec2{X: 0.5, Y: 0.5})
	in = c.Movement().TakeInput()
	if !near(in.Y, 0.5) || !near(in.Z, 0.5) {
		t.Errorf("diagonal input on wall = %v, want (0,0.5,0.5)", in)
	}
}

func TestInputDroppedDuringGrab(t *testing.T) {
	c, _ := newTestController(t, geometry.NewScene(plainWall()))
	c.Jump()
	c.Tick(200 * time.Millisecond)
	c.Move(math.Vec2{Y: 1})
	c.Tick(200 * time.Millisecond)

	got := c.Pose().Position
	if !near(got.X, 100) || !near(got.Z, 100) {
		t.Errorf("position = %v, want exactly the stand-off point", got)
	}
}

func TestPreMoveFollowsSignOnMirroredWall(t *testing.T) {
	// Wall face at x=-150 that ends at y=30. Facing it (yaw 180), the
	// character's right points along -Y, so the edge is on its left.
	mirrored := box(-250, -1000, -1000, -150, 30, 1000)
	start := Pose{Rotation: math.Rotator{Yaw: 180}}

	t.Run("right moves along -Y", func(t *testing.T) {
		c, _ := newTestController(t, geometry.NewScene(mirrored), WithPose(start))
		climbOn(t, c)
		for i := 0; i < 30; i++ {
			c.Move(math.Vec2{X: 1})
			c.Tick(time.Second / 60)
		}
		p := c.Pose().Position
		if p.Y > -250 {
			t.Errorf("y = %v after holding right, want about -300", p.Y)
		}
		if _, ok := c.probeWall(math.Vec3{}); !ok {
			t.Errorf("no wall ahead at %v after holding right", p)
		}
	})

	t.Run("left stops at the edge", func(t *testing.T) {
		c, _ := newTestController(t, geometry.NewScene(mirrored), WithPose(start))
		climbOn(t, c)
		for i := 0; i < 30; i++ {
			c.Move(math.Vec2{X: -1})
			c.Tick(time.Second / 60)
		}
		p := c.Pose().Position
		if p.Y > 30 {
			t.Errorf("y = %v after holding left, moved past the wall edge at y=30", p.Y)
		}
		if c.Mode() != OnWall {
			t.Errorf("mode = %v, want on_wall", c.Mode())
		}
		if _, ok := c.probeWall(math.Vec3{}); !ok {
			t.Errorf("no wall ahead at %v after holding left", p)
		}
	})
}

func TestHeldMoveStopsAtObstacle(t *testing.T) {
	buttress := box(60, 100, -1000, 150, 200, 1000)
	scene := geometry.NewScene(plainWall(), buttress)
	c, _ := newTestController(t, scene)
	climbOn(t, c)

	for i := 0; i < 20; i++ {
		c.PreMove(math.Vec2{X: 1}, 1)
		c.Tick(time.Second / 60)
	}

	p := c.Pose().Position
	if p.Y > 58 {
		t.Errorf("y = %v, want at most 58 in front of the buttress", p.Y)
	}
	if p.Y < 57 {
		t.Errorf("y = %v, want the character to reach the buttress", p.Y)
	}
	if _, overlapping := scene.Sweep(c.Tuning().Capsule, p, p); overlapping {
		t.Errorf("capsule at %v overlaps an obstacle", p)
	}
	if v := c.Movement().Velocity; v.Y > 1 {
		t.Errorf("velocity = %v, want it to stop against the buttress", v)
	}
}
