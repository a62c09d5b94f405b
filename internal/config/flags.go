package config

import (
	"flag"
	"fmt"
	"path/filepath"
)

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagScenario = flag.String("scenario", "", "Scenario file to run")
	flagTrace    = flag.String("trace", "", "Record probe traces to this file")
	flagTickRate = flag.Int("tick-rate", 0, "Simulation steps per second")

	flagWriteConfig = flag.String("write-config", "", "Write the effective config to this file")
	flagSaveConfig  = flag.Bool("save-config", false, "Save the effective config to the user config directory")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagScenario != "" {
		cfg.Sim.Scenario = *flagScenario
	}
	if *flagTrace != "" {
		cfg.Trace.Enabled = true
		cfg.Trace.Path = *flagTrace
	}
	if *flagTickRate > 0 {
		cfg.Sim.TickRate = *flagTickRate
	}
}

// WriteRequested writes cfg where the -write-config or -save-config flags ask
// for it and returns the paths written.
func WriteRequested(cfg *Config) ([]string, error) {
	var written []string
	if *flagWriteConfig != "" {
		if err := cfg.SaveTo(*flagWriteConfig); err != nil {
			return written, fmt.Errorf("writing config to %s: %w", *flagWriteConfig, err)
		}
		written = append(written, *flagWriteConfig)
	}
	if *flagSaveConfig {
		if err := cfg.Save(); err != nil {
			return written, fmt.Errorf("saving config: %w", err)
		}
		written = append(written, filepath.Join(ConfigDir(), "config.yaml"))
	}
	return written, nil
}
