// Package manifest records what an install put into the namespace directory.
//
// The manifest is a TOML file at the namespace root. It exists for humans
// (`ampkit config show`) and for upgrade tooling; installation state itself is
// derived from the filesystem, not from the manifest.
package manifest

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ampkit/ampkit/internal/fsops"
)

// FileName is the manifest file name inside the namespace directory.
const FileName = "manifest.toml"

// Manifest describes one completed namespace install.
type Manifest struct {
	// Version is the ampkit version that performed the install.
	Version string `toml:"version"`

	// InstalledAt is when the install completed.
	InstalledAt time.Time `toml:"installed_at"`

	// Files are the payload-relative paths that were installed, sorted.
	Files []string `toml:"files"`
}

// Write serializes m to the manifest file inside dir.
func Write(fs fsops.FS, dir string, m *Manifest) error {
	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := fs.AtomicWrite(filepath.Join(dir, FileName), data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// Load reads the manifest from dir. Returns (nil, nil) when no manifest
// exists: older installs predate the manifest and are still valid.
func Load(fs fsops.FS, dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	exists, err := fs.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check manifest: %w", err)
	}
	if !exists {
		return nil, nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}
