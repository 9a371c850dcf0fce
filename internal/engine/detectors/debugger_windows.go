//go:build windows

package detectors

import (
	"golang.org/x/sys/windows"
)

var (
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procIsDebuggerPresent = kernel32.NewProc("IsDebuggerPresent")
)

// isDebuggerAttached checks both the API flag and the raw PEB byte. Some
// debuggers hook IsDebuggerPresent without clearing the PEB, others the reverse.
func isDebuggerAttached() bool {
	return isDebuggerPresent() || pebBeingDebugged()
}

func isDebuggerPresent() bool {
	if procIsDebuggerPresent.Find() != nil {
		return false
	}
	ret, _, _ := procIsDebuggerPresent.Call()
	return ret != 0
}

// pebBeingDebugged reads the BeingDebugged byte (offset 2) of the process
// environment block. The PEB pointer comes from the TEB of the calling thread
// and never leaves this function.
func pebBeingDebugged() bool {
	peb := windows.RtlGetCurrentPeb()
	if peb == nil {
		return false
	}
	return peb.BeingDebugged != 0
}
