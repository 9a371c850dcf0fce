//go:build windows

package detectors

import (
	"fmt"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/windows"
)

const initialProcessIDs = 1024

func takeProcessSnapshot() (ProcessSnapshot, error) {
	pids, err := enumProcessIDs()
	if err != nil {
		return nil, err
	}

	buf := make([]uint16, windows.MAX_LONG_PATH)
	snapshot := make(ProcessSnapshot, 0, len(pids))
	for _, pid := range pids {
		if pid == 0 {
			continue
		}
		name, ok := processImageName(pid, buf)
		if !ok {
			continue
		}
		snapshot = append(snapshot, name)
	}
	return snapshot, nil
}

// enumProcessIDs grows the buffer until EnumProcesses no longer fills it.
func enumProcessIDs() ([]uint32, error) {
	pids := make([]uint32, initialProcessIDs)
	for {
		var returned uint32
		if err := windows.EnumProcesses(pids, &returned); err != nil {
			return nil, fmt.Errorf("EnumProcesses: %w", err)
		}
		n := int(returned) / int(unsafe.Sizeof(pids[0]))
		if n < len(pids) {
			return pids[:n], nil
		}
		pids = make([]uint32, len(pids)*2)
	}
}

// processImageName resolves the image base name of pid. The process handle
// is always closed before returning.
func processImageName(pid uint32, buf []uint16) (string, bool) {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return "", false
	}
	defer windows.CloseHandle(h) //nolint:errcheck // nothing to do on close failure

	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil {
		return "", false
	}
	return filepath.Base(windows.UTF16ToString(buf[:size])), true
}
