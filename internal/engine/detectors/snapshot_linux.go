//go:build linux

package detectors

import (
	"fmt"

	"github.com/prometheus/procfs"
)

func takeProcessSnapshot() (ProcessSnapshot, error) {
	procs, err := procfs.AllProcs()
	if err != nil {
		return nil, fmt.Errorf("list procfs: %w", err)
	}

	snapshot := make(ProcessSnapshot, 0, len(procs))
	for _, p := range procs {
		// Each read fails independently for processes that exited or belong
		// to other users; whatever is readable is kept.
		exe, _ := p.Executable()
		argv, _ := p.CmdLine()
		comm, _ := p.Comm()
		snapshot = append(snapshot, processNames(exe, argv, comm)...)
	}
	return snapshot, nil
}
