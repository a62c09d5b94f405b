package climb

import (
	"errors"
	"fmt"
	"time"

	"github.com/Faultbox/wallclimb/internal/geometry"
	"github.com/Faultbox/wallclimb/pkg/math"
)

// Tuning holds the climbing constants.
type Tuning struct {
	// Probes
	ProbeLength     float32   `yaml:"probe_length"`     // forward reach of each wall probe
	LowerAnchor     math.Vec3 `yaml:"lower_anchor"`     // local-space start of the lower probe
	UpperAnchor     math.Vec3 `yaml:"upper_anchor"`     // local-space start of the upper probe
	NormalAgreement float32   `yaml:"normal_agreement"` // min dot between the two probe normals

	// Transition
	ConfirmDelay time.Duration `yaml:"confirm_delay"` // detection to commit
	GrabDuration time.Duration `yaml:"grab_duration"` // snap-to-wall interpolation
	StandOff     float32       `yaml:"stand_off"`     // distance kept from the wall surface

	// On-wall movement
	AxisThreshold float32          `yaml:"axis_threshold"` // input component needed to pick an axis
	MoveStep      float32          `yaml:"move_step"`      // look-ahead per unit of input
	ClimbSpeed    float32          `yaml:"climb_speed"`    // units per second while on a wall
	Capsule       geometry.Capsule `yaml:"capsule"`

	MaxLookPitch float32 `yaml:"max_look_pitch"`
}

// DefaultTuning returns the stock climbing constants.
func DefaultTuning() Tuning {
	return Tuning{
		ProbeLength:     200,
		LowerAnchor:     math.Vec3{},
		UpperAnchor:     math.Vec3{Z: 100},
		NormalAgreement: 0.95,

		ConfirmDelay: 200 * time.Millisecond,
		GrabDuration: 200 * time.Millisecond,
		StandOff:     50,

		AxisThreshold: 0.9,
		MoveStep:      50,
		ClimbSpeed:    600,
		Capsule:       geometry.Capsule{Radius: 42, HalfHeight: 96},

		MaxLookPitch: 89,
	}
}

// Validate reports every out-of-range value.
func (t Tuning) Validate() error {
	var errs []error
	if t.ProbeLength <= 0 {
		errs = append(errs, fmt.Errorf("probe_length must be positive, got %v", t.ProbeLength))
	}
	if t.NormalAgreement < -1 || t.NormalAgreement > 1 {
		errs = append(errs, fmt.Errorf("normal_agreement must be in [-1, 1], got %v", t.NormalAgreement))
	}
	if t.ConfirmDelay < 0 || t.GrabDuration < 0 {
		errs = append(errs, errors.New("confirm_delay and grab_duration must not be negative"))
	}
	if t.StandOff < 0 {
		errs = append(errs, fmt.Errorf("stand_off must not be negative, got %v", t.StandOff))
	}
	if t.AxisThreshold <= 0 || t.AxisThreshold > 1 {
		errs = append(errs, fmt.Errorf("axis_threshold must be in (0, 1], got %v", t.AxisThreshold))
	}
	if t.MoveStep <= 0 || t.ClimbSpeed <= 0 {
		errs = append(errs, errors.New("move_step and climb_speed must be positive"))
	}
	if t.Capsule.Radius <= 0 || t.Capsule.HalfHeight <= 0 {
		errs = append(errs, errors.New("capsule radius and half_height must be positive"))
	}
	if t.StandOff <= t.Capsule.Radius {
		errs = append(errs, fmt.Errorf("stand_off %v must exceed capsule radius %v or the character starts inside the wall", t.StandOff, t.Capsule.Radius))
	}
	return errors.Join(errs...)
}
