package detectors

import (
	"context"
	"fmt"
	"strings"

	"github.com/xivu/axom/internal/engine"
)

// dangerousProcessNames is the fixed denylist of debuggers, disassemblers,
// decompilers, process/API monitors, packet capture tools and intercepting
// proxies. Entries are lowercase; matching is by substring.
var dangerousProcessNames = []string{
	"ollydbg.exe",
	"x64dbg.exe",
	"x32dbg.exe",
	"windbg.exe",
	"ida.exe",
	"ida64.exe",
	"idaq.exe",
	"idaq64.exe",
	"radare2.exe",
	"ghidra.exe",
	"processhacker.exe",
	"procmon.exe",
	"procexp.exe",
	"apimonitor.exe",
	"cheatengine.exe",
	"dnspy.exe",
	"reflexil.exe",
	"de4dot.exe",
	"ilspy.exe",
	"dotpeek.exe",
	"reshacker.exe",
	"pe-bear.exe",
	"pestudio.exe",
	"hxd.exe",
	"wireshark.exe",
	"fiddler.exe",
	"burpsuite.exe",
	"httpanalyzer.exe",
	"charles.exe",
	"mitmproxy.exe",
}

// DangerousNames returns a copy of the denylist.
func DangerousNames() []string {
	out := make([]string, len(dangerousProcessNames))
	copy(out, dangerousProcessNames)
	return out
}

// ProcessSnapshot is the list of process image base names captured by one
// probe invocation. It is never cached across checks.
type ProcessSnapshot []string

// SnapshotFunc captures the current running-process list.
type SnapshotFunc func() (ProcessSnapshot, error)

// FirstDangerous returns the first snapshot entry whose lowercased name
// contains a denylisted name.
func FirstDangerous(snapshot ProcessSnapshot) (string, bool) {
	for _, name := range snapshot {
		lower := strings.ToLower(name)
		for _, dangerous := range dangerousProcessNames {
			if strings.Contains(lower, dangerous) {
				return name, true
			}
		}
	}
	return "", false
}

// ContainsDangerous reports whether any entry in the snapshot matches the denylist.
func ContainsDangerous(snapshot ProcessSnapshot) bool {
	_, found := FirstDangerous(snapshot)
	return found
}

// AnalysisToolDetector checks the running-process list for known analysis tooling.
type AnalysisToolDetector struct {
	snapshot SnapshotFunc
}

// NewAnalysisToolDetector returns a detector that enumerates the processes of
// the current host.
func NewAnalysisToolDetector() *AnalysisToolDetector {
	return NewAnalysisToolDetectorWithSnapshot(takeProcessSnapshot)
}

// NewAnalysisToolDetectorWithSnapshot returns a detector backed by a custom
// snapshot source.
func NewAnalysisToolDetectorWithSnapshot(fn SnapshotFunc) *AnalysisToolDetector {
	return &AnalysisToolDetector{snapshot: fn}
}

func (d *AnalysisToolDetector) Name() string {
	return "analysis_tools"
}

func (d *AnalysisToolDetector) Category() engine.ThreatCategory {
	return engine.CategoryAnalysisTool
}

func (d *AnalysisToolDetector) Detect(ctx context.Context) (*engine.DetectResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot, err := d.snapshot()
	if err != nil {
		return nil, fmt.Errorf("enumerate processes: %w", err)
	}

	name, found := FirstDangerous(snapshot)
	if !found {
		return &engine.DetectResult{}, nil
	}
	return &engine.DetectResult{
		Triggered: true,
		Details:   "process: " + name,
	}, nil
}
