// Package reactor implements the destruction response: it wipes the
// application's installation directory and its per-user data directory,
// then terminates the process.
package reactor

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/xivu/axom/internal/exitcodes"
)

// Reactor deletes the application's files and exits. It never reports an
// error: there is no caller left to receive one.
type Reactor struct {
	appID         string
	fs            afero.Fs
	executableDir func() (string, error)
	dataRoot      func() (string, error)
	homeDir       func() (string, error)
	exit          func(code int)
	logger        *zap.Logger
}

// Option configures a Reactor.
type Option func(*Reactor)

// WithFilesystem overrides the filesystem the reactor deletes from.
func WithFilesystem(fs afero.Fs) Option {
	return func(r *Reactor) {
		r.fs = fs
	}
}

// WithExecutableDir overrides how the installation directory is resolved.
func WithExecutableDir(fn func() (string, error)) Option {
	return func(r *Reactor) {
		r.executableDir = fn
	}
}

// WithDataRoot overrides how the per-user data root is resolved.
func WithDataRoot(fn func() (string, error)) Option {
	return func(r *Reactor) {
		r.dataRoot = fn
	}
}

// WithHomeDir overrides how the user's home directory is resolved.
func WithHomeDir(fn func() (string, error)) Option {
	return func(r *Reactor) {
		r.homeDir = fn
	}
}

// WithExit overrides process termination. Tests use it to observe the code.
func WithExit(fn func(code int)) Option {
	return func(r *Reactor) {
		r.exit = fn
	}
}

// WithLogger sets the logger. Only debug-level entries are written.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Reactor) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a reactor for the application identified by the
// reverse-domain appID (e.g. "com.xivu.axom").
func New(appID string, opts ...Option) *Reactor {
	r := &Reactor{
		appID:         appID,
		fs:            afero.NewOsFs(),
		executableDir: ExecutableDir,
		dataRoot:      DataLocalDir,
		homeDir:       os.UserHomeDir,
		exit:          os.Exit,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Targets returns the directories Execute wipes, in order. Paths that cannot
// be resolved are omitted.
func (r *Reactor) Targets() []string {
	var targets []string
	if dir, err := r.executableDir(); err == nil {
		targets = append(targets, dir)
	}
	if root, err := r.dataRoot(); err == nil && r.appID != "" {
		targets = append(targets, filepath.Join(root, r.appID))
	}
	return targets
}

// Execute wipes every target and terminates the process with
// exitcodes.ProtectionTriggered. Termination happens even if a deletion
// step panics.
//
// A target that resolves to a filesystem root or to the user's home
// directory is skipped rather than removed, so an executable launched
// straight from ~ or C:\ does not take the whole profile or volume with it.
func (r *Reactor) Execute() {
	defer r.exit(exitcodes.ProtectionTriggered)

	incidentID := uuid.New()
	home, _ := r.homeDir()

	for _, target := range r.Targets() {
		if isProtectedPath(target, home) {
			r.logger.Debug("skipping protected path",
				zap.Stringer("incident_id", incidentID),
				zap.String("path", target),
			)
			continue
		}
		visited := RemoveTree(r.fs, target)
		r.logger.Debug("wiped target",
			zap.Stringer("incident_id", incidentID),
			zap.String("path", target),
			zap.Int("visited", visited),
		)
	}
	_ = r.logger.Sync()
}
