//go:build darwin

package detectors

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func takeProcessSnapshot() (ProcessSnapshot, error) {
	procs, err := unix.SysctlKinfoProcSlice("kern.proc.all")
	if err != nil {
		return nil, fmt.Errorf("sysctl kern.proc.all: %w", err)
	}

	snapshot := make(ProcessSnapshot, 0, len(procs))
	for i := range procs {
		comm := unix.ByteSliceToString(procs[i].Proc.P_comm[:])

		// P_comm is cut to 16 bytes; procargs2 carries the full exec path
		// but is unreadable for other users' processes.
		var exe string
		var argv []string
		if buf, err := unix.SysctlRaw("kern.procargs2", int(procs[i].Proc.P_pid)); err == nil {
			path, arg0 := parseProcArgs2(buf)
			exe = path
			if arg0 != "" {
				argv = []string{arg0}
			}
		}
		snapshot = append(snapshot, processNames(exe, argv, comm)...)
	}
	return snapshot, nil
}
