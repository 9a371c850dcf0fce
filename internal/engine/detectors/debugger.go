package detectors

import (
	"context"

	"github.com/xivu/axom/internal/engine"
)

// DebuggerDetector checks whether a debugger is attached to this process.
type DebuggerDetector struct {
	attached func() bool
}

// NewDebuggerDetector returns a detector using the platform checks.
func NewDebuggerDetector() *DebuggerDetector {
	return &DebuggerDetector{attached: isDebuggerAttached}
}

func (d *DebuggerDetector) Name() string {
	return "debugger"
}

func (d *DebuggerDetector) Category() engine.ThreatCategory {
	return engine.CategoryDebugger
}

func (d *DebuggerDetector) Detect(ctx context.Context) (*engine.DetectResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !d.attached() {
		return &engine.DetectResult{}, nil
	}
	return &engine.DetectResult{
		Triggered: true,
		Details:   "debugger attached",
	}, nil
}

// Defaults returns the detectors a release build runs each cycle, debugger first.
func Defaults() []engine.Detector {
	return []engine.Detector{
		NewDebuggerDetector(),
		NewAnalysisToolDetector(),
	}
}
