// Package scenario runs scripted climbing sessions against a box scene.
//
// A scenario is a YAML file describing the level geometry, the character's
// starting pose and a timeline of input events. Run steps a climbing
// controller through it at a fixed tick rate and reports what happened.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/wallclimb/internal/climb"
	"github.com/Faultbox/wallclimb/internal/geometry"
	"github.com/Faultbox/wallclimb/internal/input"
	"github.com/Faultbox/wallclimb/pkg/math"
)

// Scenario is a scripted climbing session.
type Scenario struct {
	Name     string          `yaml:"name"`
	Duration time.Duration   `yaml:"duration"`
	Start    climb.Pose      `yaml:"start"`
	Boxes    []geometry.AABB `yaml:"boxes"`
	Timeline []Step          `yaml:"timeline"`
	Expect   *Expect         `yaml:"expect"`
}

// Step is one input event on the timeline.
type Step struct {
	At    time.Duration `yaml:"at"`
	Event string        `yaml:"event"`
	Axis  math.Vec2     `yaml:"axis"`

	typ input.EventType
}

// Type returns the parsed event type.
func (s Step) Type() input.EventType { return s.typ }

// Expect lists the outcome a scenario must reach.
type Expect struct {
	Mode           string     `yaml:"mode"`
	MinWallEntries int        `yaml:"min_wall_entries"`
	Position       *math.Vec3 `yaml:"position"`
	Tolerance      float32    `yaml:"tolerance"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse validates data against the scenario schema and decodes it.
// Timeline steps are sorted by time; steps sharing a time keep file order.
func Parse(data []byte) (*Scenario, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	if s.Duration <= 0 {
		return nil, errors.New("duration must be positive")
	}

	for i := range s.Timeline {
		typ, err := input.ParseEventType(s.Timeline[i].Event)
		if err != nil {
			return nil, fmt.Errorf("timeline[%d]: %w", i, err)
		}
		s.Timeline[i].typ = typ
	}
	sort.SliceStable(s.Timeline, func(i, j int) bool {
		return s.Timeline[i].At < s.Timeline[j].At
	})

	for i, b := range s.Boxes {
		s.Boxes[i] = geometry.NewAABB(b.Min, b.Max)
	}
	if s.Expect != nil && s.Expect.Mode != "" {
		if _, ok := climb.ParseMode(s.Expect.Mode); !ok {
			return nil, fmt.Errorf("expect: unknown mode %q", s.Expect.Mode)
		}
	}
	return &s, nil
}
