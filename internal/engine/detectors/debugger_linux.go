//go:build linux

package detectors

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// isDebuggerAttached checks /proc/self/status for a non-zero TracerPid,
// which is set while a ptrace tracer is attached.
func isDebuggerAttached() bool {
	f, err := os.Open("/proc/self/status")
	if err != nil {
		return false
	}
	defer f.Close()

	pid, err := tracerPID(f)
	if err != nil {
		return false
	}
	return pid != 0
}

func tracerPID(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "TracerPid:") {
			continue
		}
		return strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "TracerPid:")))
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return 0, nil
}
