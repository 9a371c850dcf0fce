package monitor

// VerifyIntegrity reports whether this installation is trustworthy. The
// host calls it once before normal operation and exits with
// exitcodes.IntegrityFailed on false.
//
// It currently performs no verification and always returns true.
func VerifyIntegrity() bool {
	return true
}
