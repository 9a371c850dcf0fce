package engine

import (
	"context"
)

// Detector is the interface every environment check must implement.
// Detect is recomputed on every call; implementations must not cache.
type Detector interface {
	// Name returns the detector's unique identifier (e.g., "debugger").
	Name() string

	// Category returns the observation category this detector covers.
	Category() ThreatCategory

	// Detect runs one point-in-time check. Any OS handle acquired during
	// the check must be released before Detect returns.
	Detect(ctx context.Context) (*DetectResult, error)
}

// DetectResult is the outcome of a single detector run.
type DetectResult struct {
	Triggered bool
	Details   string
}
