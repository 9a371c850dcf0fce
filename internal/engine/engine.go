package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProbeEngine runs the registered detectors for one probe cycle.
type ProbeEngine struct {
	detectors []Detector
	logger    *zap.Logger
}

// NewProbeEngine creates an engine over the given detectors. Detectors are
// evaluated in the order given.
func NewProbeEngine(detectors []Detector, logger *zap.Logger) *ProbeEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProbeEngine{
		detectors: detectors,
		logger:    logger,
	}
}

// Evaluate runs the detectors sequentially and stops at the first one that
// triggers. A detector that returns an error counts as not triggered for this
// cycle: a failed enumeration degrades to "no detection", it never escalates.
func (e *ProbeEngine) Evaluate(ctx context.Context) ([]DetectorResult, time.Duration) {
	start := time.Now()
	cycleID := uuid.New()

	results := make([]DetectorResult, 0, len(e.detectors))
	for _, d := range e.detectors {
		if ctx.Err() != nil {
			break
		}

		res, err := d.Detect(ctx)
		if err != nil {
			e.logger.Debug("detector error",
				zap.Stringer("cycle_id", cycleID),
				zap.String("detector", d.Name()),
				zap.Error(err),
			)
			results = append(results, DetectorResult{
				Detector: d.Name(),
				Category: d.Category(),
				Details:  "detector error: " + err.Error(),
			})
			continue
		}
		if res == nil {
			continue
		}

		results = append(results, DetectorResult{
			Detector:  d.Name(),
			Triggered: res.Triggered,
			Category:  d.Category(),
			Details:   res.Details,
		})
		if res.Triggered {
			e.logger.Debug("detector triggered",
				zap.Stringer("cycle_id", cycleID),
				zap.String("detector", d.Name()),
				zap.Stringer("category", d.Category()),
			)
			break
		}
	}

	return results, time.Since(start)
}
