// Package conflict inspects the Claude configuration directory for files
// that a non-namespaced install would have collided with.
//
// Because ampkit always installs into its own namespace subdirectory, a
// conflict is never fatal: the report exists so the user can see which of
// their files the namespace scheme is protecting.
package conflict

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ampkit/ampkit/internal/fsops"
)

// Report is an immutable snapshot of conflicting relative paths, computed
// fresh on each check.
type Report struct {
	paths []string
}

// Paths returns the conflicting relative paths in sorted order.
func (r *Report) Paths() []string {
	out := make([]string, len(r.paths))
	copy(out, r.paths)
	return out
}

// Empty reports whether no conflicts were found.
func (r *Report) Empty() bool {
	return len(r.paths) == 0
}

// Len returns the number of conflicting paths.
func (r *Report) Len() int {
	return len(r.paths)
}

// Detector checks a Claude configuration directory for pre-existing files
// that collide with tool-managed relative paths.
type Detector struct {
	fs fsops.FS
}

// NewDetector creates a new Detector.
func NewDetector(fs fsops.FS) *Detector {
	return &Detector{fs: fs}
}

// Check returns the subset of relPaths that already exist directly under
// claudeDir. A missing claudeDir is treated as a fresh install: empty report,
// no error. The check has no side effects.
func (d *Detector) Check(claudeDir string, relPaths []string) (*Report, error) {
	exists, err := d.fs.Exists(claudeDir)
	if err != nil {
		return nil, fmt.Errorf("failed to check configuration directory: %w", err)
	}
	if !exists {
		return &Report{}, nil
	}

	var conflicts []string
	for _, rel := range relPaths {
		if err := d.fs.ValidateRelPath(rel); err != nil {
			return nil, fmt.Errorf("invalid managed path %q: %w", rel, err)
		}

		found, err := d.fs.Exists(filepath.Join(claudeDir, rel))
		if err != nil {
			if os.IsPermission(err) {
				return nil, fmt.Errorf("failed to inspect %s: %w", rel, err)
			}
			return nil, fmt.Errorf("failed to check %s: %w", rel, err)
		}
		if found {
			conflicts = append(conflicts, rel)
		}
	}

	sort.Strings(conflicts)
	return &Report{paths: conflicts}, nil
}
