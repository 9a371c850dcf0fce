package engine

// Verdict is the outcome of one probe cycle.
type Verdict int

const (
	VerdictClean Verdict = iota + 1
	VerdictObserved
)

// String returns the lowercase verdict name.
func (v Verdict) String() string {
	switch v {
	case VerdictClean:
		return "clean"
	case VerdictObserved:
		return "observed"
	default:
		return "unspecified"
	}
}

// ThreatCategory classifies what kind of observation a detector covers.
type ThreatCategory int

const (
	CategoryUnspecified  ThreatCategory = iota
	CategoryDebugger                    // debugger
	CategoryAnalysisTool                // analysis_tool
)

// String returns the snake_case category name used in log fields.
func (c ThreatCategory) String() string {
	switch c {
	case CategoryDebugger:
		return "debugger"
	case CategoryAnalysisTool:
		return "analysis_tool"
	default:
		return "unspecified"
	}
}

// DetectorResult is the output from a single detector run within the engine.
type DetectorResult struct {
	Detector  string
	Triggered bool
	Category  ThreatCategory
	Details   string
}
