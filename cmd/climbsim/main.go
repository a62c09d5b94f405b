// Package main is the entry point for the wall-climbing simulator.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/wallclimb/internal/climb"
	"github.com/Faultbox/wallclimb/internal/config"
	"github.com/Faultbox/wallclimb/internal/logger"
	"github.com/Faultbox/wallclimb/internal/scenario"
	"github.com/Faultbox/wallclimb/internal/trace"
)

// Exit codes.
const (
	exitOK = iota
	exitError
	exitExpectationFailed
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return exitError
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return exitError
	}
	defer logger.Sync()

	logger.Info("=== wallclimb simulator ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	written, err := config.WriteRequested(cfg)
	for _, path := range written {
		logger.Info("config written", zap.String("path", path))
	}
	if err != nil {
		logger.Error("failed to write config", zap.Error(err))
		return exitError
	}
	if len(written) > 0 && cfg.Sim.Scenario == "" {
		return exitOK
	}

	if cfg.Sim.Scenario == "" {
		fmt.Fprintln(os.Stderr, "no scenario given; use -scenario or sim.scenario")
		return exitError
	}
	s, err := scenario.Load(cfg.Sim.Scenario)
	if err != nil {
		logger.Error("failed to load scenario", zap.Error(err))
		return exitError
	}

	tracers := trace.Fanout{trace.NewLogTracer(logger.Named("trace"))}
	var rec *trace.Recorder
	if cfg.Trace.Enabled {
		rec, err = trace.NewRecorder(cfg.Trace.Path)
		if err != nil {
			logger.Error("failed to open trace recorder", zap.Error(err))
			return exitError
		}
		tracers = append(tracers, rec)
	}

	res, err := scenario.Run(s, cfg, climb.WithTracer(tracers))
	if rec != nil {
		if cerr := rec.Close(); cerr != nil {
			logger.Error("failed to write trace", zap.String("path", cfg.Trace.Path), zap.Error(cerr))
		} else {
			logger.Info("trace written", zap.String("path", cfg.Trace.Path), zap.Int("events", rec.Count()))
		}
	}
	if err != nil {
		logger.Error("scenario failed", zap.Error(err))
		return exitError
	}

	fmt.Println(res.Summary())
	for _, tr := range res.Transitions {
		fmt.Printf("  %8.3fs  %v -> %v\n", tr.At.Seconds(), tr.From, tr.To)
	}

	if err := res.Check(s.Expect); err != nil {
		fmt.Fprintf(os.Stderr, "expectations not met:\n%v\n", err)
		return exitExpectationFailed
	}
	logger.Info("scenario passed", zap.String("scenario", s.Name))
	return exitOK
}
