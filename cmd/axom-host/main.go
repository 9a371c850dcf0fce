package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xivu/axom/internal/config"
	"github.com/xivu/axom/internal/engine"
	"github.com/xivu/axom/internal/engine/detectors"
	"github.com/xivu/axom/internal/exitcodes"
	"github.com/xivu/axom/internal/monitor"
	"github.com/xivu/axom/internal/reactor"
)

func main() {
	// Config from env
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: invalid configuration: %v\n", err)
		os.Exit(exitcodes.ConfigInvalid)
	}

	// Logger
	logger := mustBuildLogger(cfg.LogLevel)

	if !monitor.VerifyIntegrity() {
		logger.Error("installation integrity check failed")
		_ = logger.Sync()
		os.Exit(exitcodes.IntegrityFailed)
	}

	// Protection: started once, never in development builds.
	startProtection(newMonitor(cfg, logger), devBuild)

	logger.Info("axom host started", zap.Bool("dev_build", devBuild))

	// Block until shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
	_ = logger.Sync()
}

// newMonitor wires the release detectors and the reactor into an idle monitor.
func newMonitor(cfg config.Config, logger *zap.Logger) *monitor.Monitor {
	probe := engine.NewProbeEngine(detectors.Defaults(), logger)
	r := reactor.New(cfg.AppID, reactor.WithLogger(logger))
	return monitor.New(probe, r,
		monitor.WithInterval(cfg.ProtectionInterval),
		monitor.WithLogger(logger),
	)
}

// startProtection starts m unless this is a development build. It reports
// whether the monitor is watching.
func startProtection(m *monitor.Monitor, dev bool) bool {
	if dev {
		return false
	}
	m.Start()
	return m.Running()
}

// mustBuildLogger builds the JSON stderr logger. An unrecognised level
// falls back to info.
func mustBuildLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Sampling = nil
	cfg.OutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("build logger: %v", err))
	}
	return logger
}
