// Package exitcodes contains the process exit codes produced by the
// protection core. They are distinct from the Go runtime's own codes
// (2 for panics) so a supervising process can tell them apart.
package exitcodes

const (
	// IntegrityFailed is used by the host when the integrity query reports
	// an untrustworthy installation.
	IntegrityFailed = 1
	// ConfigInvalid is used by the host when its environment configuration
	// cannot be parsed (EX_CONFIG from sysexits.h).
	ConfigInvalid = 78
	// ProtectionTriggered is used by the reactor after it has wiped the
	// installation and data directories.
	ProtectionTriggered = 86
)
