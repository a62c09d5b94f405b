// Package config handles simulator configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/wallclimb/internal/climb"
)

// Config holds all simulator settings.
type Config struct {
	Climb   climb.Tuning  `yaml:"climb"`
	Sim     SimConfig     `yaml:"sim"`
	Trace   TraceConfig   `yaml:"trace"`
	Logging LoggingConfig `yaml:"logging"`
}

// SimConfig holds stepping and ground movement settings.
type SimConfig struct {
	TickRate  int     `yaml:"tick_rate"`  // simulation steps per second
	WalkSpeed float32 `yaml:"walk_speed"` // ground speed in units per second
	JumpSpeed float32 `yaml:"jump_speed"` // initial upward speed of a jump
	Gravity   float32 `yaml:"gravity"`    // downward acceleration while airborne
	Scenario  string  `yaml:"scenario"`   // scenario file to run
}

// TraceConfig holds probe trace recording settings.
type TraceConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // zstd-compressed JSON lines
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Climb: climb.DefaultTuning(),
		Sim: SimConfig{
			TickRate:  60,
			WalkSpeed: 600,
			JumpSpeed: 420,
			Gravity:   980,
		},
		Trace: TraceConfig{
			Enabled: false,
			Path:    "climb-trace.jsonl.zst",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks settings that would make a run meaningless.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Climb.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("climb: %w", err))
	}
	if c.Sim.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("sim.tick_rate must be positive, got %d", c.Sim.TickRate))
	}
	if c.Sim.WalkSpeed < 0 || c.Sim.JumpSpeed < 0 || c.Sim.Gravity < 0 {
		errs = append(errs, errors.New("sim speeds and gravity must not be negative"))
	}
	if c.Trace.Enabled && c.Trace.Path == "" {
		errs = append(errs, errors.New("trace.path is required when tracing is enabled"))
	}
	return errors.Join(errs...)
}
