// Package payload holds the framework files ampkit installs.
//
// The files ship inside the binary via go:embed so a plain `ampkit install`
// needs no network and no source checkout. FromDir supports installing from a
// local tree instead, for development builds of the framework.
package payload

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed all:assets
var embedded embed.FS

// Tree returns the embedded payload as a file tree rooted at the files that
// will land inside the namespace directory.
func Tree() (fs.FS, error) {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded payload: %w", err)
	}
	return sub, nil
}

// FromDir returns a payload tree read from a local directory.
func FromDir(dir string) (fs.FS, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open payload directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("payload path %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// List returns the relative paths of every regular file in the tree, in walk
// order. Used by the conflict detector and for dry-run display.
func List(tree fs.FS) ([]string, error) {
	var files []string
	err := fs.WalkDir(tree, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk payload tree: %w", err)
	}
	return files, nil
}
