package engine

import (
	"testing"
)

func TestAggregate_AllClear(t *testing.T) {
	results := []DetectorResult{
		{Detector: "debugger", Triggered: false},
		{Detector: "analysis_tools", Triggered: false},
	}

	agg := Aggregate(results)
	if agg.Verdict != VerdictClean {
		t.Errorf("expected clean, got %v", agg.Verdict)
	}
	if agg.Observed() {
		t.Error("clean verdict must not report observed")
	}
	if agg.Reason != "" {
		t.Errorf("expected empty reason, got: %s", agg.Reason)
	}
}

func TestAggregate_Empty(t *testing.T) {
	agg := Aggregate(nil)
	if agg.Verdict != VerdictClean {
		t.Errorf("expected clean for no results, got %v", agg.Verdict)
	}
}

func TestAggregate_SingleTrigger(t *testing.T) {
	results := []DetectorResult{
		{Detector: "debugger", Triggered: true, Category: CategoryDebugger},
	}

	agg := Aggregate(results)
	if !agg.Observed() {
		t.Errorf("expected observed, got %v", agg.Verdict)
	}
	if agg.Reason != "triggered: debugger" {
		t.Errorf("unexpected reason: %s", agg.Reason)
	}
}

func TestAggregate_BothTriggered(t *testing.T) {
	results := []DetectorResult{
		{Detector: "debugger", Triggered: true},
		{Detector: "analysis_tools", Triggered: true},
	}

	agg := Aggregate(results)
	if agg.Verdict != VerdictObserved {
		t.Errorf("expected observed, got %v", agg.Verdict)
	}
	if agg.Reason != "triggered: debugger, analysis_tools" {
		t.Errorf("unexpected reason: %s", agg.Reason)
	}
}

func TestAggregate_ErrorResultIsNotTrigger(t *testing.T) {
	results := []DetectorResult{
		{Detector: "analysis_tools", Details: "detector error: enumerate processes: access denied"},
	}

	if Aggregate(results).Observed() {
		t.Error("a detector error must degrade to no detection")
	}
}

func TestVerdict_String(t *testing.T) {
	cases := map[Verdict]string{
		VerdictClean:    "clean",
		VerdictObserved: "observed",
		Verdict(0):      "unspecified",
	}
	for v, want := range cases {
		if got := v.String(); got != want {
			t.Errorf("Verdict(%d).String() = %q, want %q", int(v), got, want)
		}
	}
}

func TestThreatCategory_String(t *testing.T) {
	cases := map[ThreatCategory]string{
		CategoryDebugger:     "debugger",
		CategoryAnalysisTool: "analysis_tool",
		CategoryUnspecified:  "unspecified",
	}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Errorf("ThreatCategory(%d).String() = %q, want %q", int(c), got, want)
		}
	}
}
