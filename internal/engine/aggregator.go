package engine

import (
	"strings"
)

// AggregateResult holds the final verdict and reason after aggregation.
type AggregateResult struct {
	Verdict Verdict
	Reason  string
}

// Observed reports whether the cycle detected observation.
func (r AggregateResult) Observed() bool {
	return r.Verdict == VerdictObserved
}

// Aggregate reduces detector results to a binary verdict: a single triggered
// detector is enough. There is no confidence grading and no debouncing.
func Aggregate(results []DetectorResult) AggregateResult {
	verdict := VerdictClean
	var triggeredNames []string

	for _, r := range results {
		if !r.Triggered {
			continue
		}
		triggeredNames = append(triggeredNames, r.Detector)
		verdict = VerdictObserved
	}

	reason := ""
	if len(triggeredNames) > 0 {
		reason = "triggered: " + strings.Join(triggeredNames, ", ")
	}

	return AggregateResult{
		Verdict: verdict,
		Reason:  reason,
	}
}
