// Package state derives the installation state from the filesystem.
//
// Installation state is never cached: it is a pure function of directory
// contents, recomputed before every decision within a single invocation.
package state

import (
	"fmt"

	"github.com/ampkit/ampkit/internal/config"
	"github.com/ampkit/ampkit/internal/fsops"
	"github.com/ampkit/ampkit/internal/integrate"
)

// Installation is the three-state installation enumeration.
type Installation string

const (
	// NotInstalled means the namespace directory does not exist.
	NotInstalled Installation = "not-installed"

	// InstalledNoIntegration means the namespace directory exists but the
	// user config file does not contain the import line.
	InstalledNoIntegration Installation = "installed-no-integration"

	// InstalledIntegrated means the namespace directory exists and the user
	// config file contains the import line.
	InstalledIntegrated Installation = "installed-integrated"
)

// String returns a human-readable label for the state.
func (s Installation) String() string {
	switch s {
	case NotInstalled:
		return "Not installed"
	case InstalledNoIntegration:
		return "Installed (not integrated)"
	case InstalledIntegrated:
		return "Installed and integrated"
	default:
		return string(s)
	}
}

// Detect computes the installation state from the filesystem.
func Detect(fs fsops.FS, integ *integrate.Integrator, paths *config.Paths) (Installation, error) {
	installed, err := fs.Exists(paths.NamespaceDir)
	if err != nil {
		return NotInstalled, fmt.Errorf("failed to check namespace directory: %w", err)
	}
	if !installed {
		return NotInstalled, nil
	}

	integrated, err := integ.Present(paths.UserConfig)
	if err != nil {
		return InstalledNoIntegration, err
	}
	if integrated {
		return InstalledIntegrated, nil
	}
	return InstalledNoIntegration, nil
}
