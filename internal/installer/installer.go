// Package installer copies the payload file tree into the namespace
// directory.
//
// The namespace directory is exclusively tool-owned, so the installer may
// overwrite freely inside it. Re-running an install produces identical
// on-disk state. Any IO failure here is fatal to the orchestration: it
// happens before the user's own files are touched.
package installer

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"sort"

	"github.com/ampkit/ampkit/internal/fsops"
)

// Installer writes payload trees into a destination directory.
type Installer struct {
	fs fsops.FS
}

// New creates a new Installer.
func New(fs fsops.FS) *Installer {
	return &Installer{fs: fs}
}

// Install copies every regular file in src into dest, creating directories as
// needed. Returns the sorted relative paths of the installed files.
func (n *Installer) Install(src iofs.FS, dest string) ([]string, error) {
	if err := n.fs.MkdirAll(dest, 0755); err != nil {
		return nil, fmt.Errorf("failed to create namespace directory: %w", err)
	}

	var installed []string
	err := iofs.WalkDir(src, ".", func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to read payload entry %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}

		if err := n.fs.ValidateRelPath(path); err != nil {
			return fmt.Errorf("refusing payload path %q: %w", path, err)
		}

		data, err := iofs.ReadFile(src, path)
		if err != nil {
			return fmt.Errorf("failed to read payload file %s: %w", path, err)
		}

		target := filepath.Join(dest, filepath.FromSlash(path))
		if err := n.fs.AtomicWrite(target, data, 0644); err != nil {
			return fmt.Errorf("failed to install %s: %w", path, err)
		}

		installed = append(installed, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(installed)
	return installed, nil
}
