//go:build !windows && !linux && !darwin

package detectors

import (
	"errors"
)

var errSnapshotUnsupported = errors.New("process enumeration not supported on this platform")

func takeProcessSnapshot() (ProcessSnapshot, error) {
	return nil, errSnapshotUnsupported
}
