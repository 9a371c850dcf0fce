package main

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/xivu/axom/internal/config"
	"github.com/xivu/axom/internal/engine"
	"github.com/xivu/axom/internal/monitor"
)

type parkedProbe struct{}

func (parkedProbe) Evaluate(context.Context) ([]engine.DetectorResult, time.Duration) {
	select {}
}

type noopReactor struct{}

func (noopReactor) Execute() {}

func TestStartProtection_DevBuildSkips(t *testing.T) {
	m := monitor.New(parkedProbe{}, noopReactor{})
	if startProtection(m, true) {
		t.Error("development builds must not start protection")
	}
	if m.Running() {
		t.Error("monitor should stay idle in development builds")
	}
}

func TestStartProtection_ReleaseStarts(t *testing.T) {
	m := monitor.New(parkedProbe{}, noopReactor{})
	if !startProtection(m, false) {
		t.Error("release builds must start protection")
	}
}

func TestNewMonitor_Idle(t *testing.T) {
	cfg := config.Config{LogLevel: "info", ProtectionInterval: time.Second, AppID: config.DefaultAppID}
	m := newMonitor(cfg, mustBuildLogger("error"))
	if m.Running() {
		t.Error("newMonitor must not start the watch loop")
	}
}

func TestMustBuildLogger_Levels(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"WARN":    zapcore.WarnLevel,
		"":        zapcore.InfoLevel,
		"unknown": zapcore.InfoLevel,
	}
	for level, want := range cases {
		logger := mustBuildLogger(level)
		if !logger.Core().Enabled(want) {
			t.Errorf("level %q: %v should be enabled", level, want)
		}
		if want > zapcore.DebugLevel && logger.Core().Enabled(want-1) {
			t.Errorf("level %q: %v should be disabled", level, want-1)
		}
	}
}
