package reactor

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// RemoveTree deletes root and everything beneath it, depth first, on a
// best-effort basis: a failure to delete one entry (locked, permission
// denied, already gone) is ignored and the walk moves on. Files are removed
// as they are encountered and a directory is removed once its children have
// been processed. Symbolic links are removed, never followed.
//
// A root that does not exist or is not a directory is left alone. The
// return value is the number of nodes visited; no error is ever reported.
func RemoveTree(fsys afero.Fs, root string) int {
	info, err := lstat(fsys, root)
	if err != nil || !info.IsDir() {
		return 0
	}
	visited := 0
	removeDir(fsys, root, &visited)
	return visited
}

func removeDir(fsys afero.Fs, dir string, visited *int) {
	*visited++

	// A directory that cannot be listed is still attempted for removal.
	entries, _ := afero.ReadDir(fsys, dir)
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if e.IsDir() {
			removeDir(fsys, path, visited)
			continue
		}
		*visited++
		_ = fsys.Remove(path)
	}

	_ = fsys.Remove(dir)
}

func lstat(fsys afero.Fs, name string) (os.FileInfo, error) {
	if l, ok := fsys.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(name)
		return info, err
	}
	return fsys.Stat(name)
}
