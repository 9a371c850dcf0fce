package reactor

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// DataLocalDir returns the per-user local application-data root:
// %LOCALAPPDATA% on Windows, ~/Library/Application Support on macOS and
// $XDG_DATA_HOME (or ~/.local/share) elsewhere. The environment is re-read
// on every call.
func DataLocalDir() (string, error) {
	xdg.Reload()
	if xdg.DataHome == "" {
		return "", errors.New("per-user data directory is not defined")
	}
	return xdg.DataHome, nil
}

// ExecutableDir returns the directory containing the running executable.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// isProtectedPath reports whether path must never be wiped: empty, a
// filesystem or volume root, or the user's home directory.
func isProtectedPath(path, home string) bool {
	if path == "" {
		return true
	}
	clean := filepath.Clean(path)
	if filepath.Dir(clean) == clean {
		return true
	}
	return home != "" && clean == filepath.Clean(home)
}
