package scenario

import (
	"errors"
	"fmt"

	"github.com/Faultbox/wallclimb/internal/climb"
)

// DefaultTolerance is the position tolerance used when an expectation gives none.
const DefaultTolerance = 1

// Check compares the result with e and reports every unmet expectation.
// A nil expectation always passes.
func (r *Result) Check(e *Expect) error {
	if e == nil {
		return nil
	}

	var errs []error
	if e.Mode != "" {
		want, ok := climb.ParseMode(e.Mode)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown expected mode %q", e.Mode))
		} else if r.Mode != want {
			errs = append(errs, fmt.Errorf("mode = %v, want %v", r.Mode, want))
		}
	}
	if r.WallEntries < e.MinWallEntries {
		errs = append(errs, fmt.Errorf("wall entries = %d, want at least %d", r.WallEntries, e.MinWallEntries))
	}
	if e.Position != nil {
		tol := e.Tolerance
		if tol <= 0 {
			tol = DefaultTolerance
		}
		if d := r.Pose.Position.Distance(*e.Position); d > tol {
			errs = append(errs, fmt.Errorf("position = %v, want %v (off by %.2f)", r.Pose.Position, *e.Position, d))
		}
	}
	return errors.Join(errs...)
}

// Summary is a one-line description of the result for CLI output.
func (r *Result) Summary() string {
	return fmt.Sprintf("%s: %d steps, mode=%v, wall entries=%d, transitions=%d, position=(%.1f, %.1f, %.1f) yaw=%.1f",
		r.Name, r.Steps, r.Mode, r.WallEntries, len(r.Transitions),
		r.Pose.Position.X, r.Pose.Position.Y, r.Pose.Position.Z, r.Pose.Rotation.Yaw)
}
