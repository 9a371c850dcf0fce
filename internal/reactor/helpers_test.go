package reactor

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// lockingFs refuses to remove the configured paths, simulating files held
// open by another process, and counts every removal attempt.
type lockingFs struct {
	afero.Fs

	mu       sync.Mutex
	locked   map[string]bool
	attempts map[string]int
}

func newLockingFs(locked ...string) *lockingFs {
	l := &lockingFs{
		Fs:       afero.NewOsFs(),
		locked:   map[string]bool{},
		attempts: map[string]int{},
	}
	for _, p := range locked {
		l.locked[filepath.Clean(p)] = true
	}
	return l
}

func (l *lockingFs) Remove(name string) error {
	l.mu.Lock()
	l.attempts[filepath.Clean(name)]++
	locked := l.locked[filepath.Clean(name)]
	l.mu.Unlock()

	if locked {
		return &os.PathError{Op: "remove", Path: name, Err: os.ErrPermission}
	}
	return l.Fs.Remove(name)
}

// fataler is satisfied by both *testing.T and *rapid.T.
type fataler interface {
	Helper()
	Fatalf(format string, args ...any)
}

// buildTree creates the given relative paths under root. Paths ending in
// "/" are directories, everything else is a file.
func buildTree(t fataler, root string, paths []string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if p[len(p)-1] == '/' {
			if err := os.MkdirAll(full, 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", full, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(full), err)
		}
		if err := os.WriteFile(full, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", full, err)
		}
	}
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
