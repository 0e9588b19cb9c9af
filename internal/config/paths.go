// Package config manages ampkit configuration and filesystem paths.
//
// All paths derive from the Claude configuration directory, which defaults to
// ~/.claude and can be overridden via the AMPKIT_CLAUDE_DIR environment
// variable. The tool owns exactly one subdirectory of it (the namespace
// directory); everything else in the Claude directory belongs to the user.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Namespace is the name of the subdirectory ampkit exclusively owns inside
// the Claude configuration directory. Its contents are fully replaceable by
// the tool and must never be edited by hand.
const Namespace = "ampkit"

// UserConfigName is the user's top-level Claude configuration file. ampkit
// only ever appends or removes its single import line there.
const UserConfigName = "CLAUDE.md"

// Paths contains all the filesystem paths used by ampkit.
type Paths struct {
	// ClaudeDir is the user's Claude configuration directory (default: ~/.claude)
	ClaudeDir string

	// NamespaceDir is the tool-owned installation directory (ClaudeDir/ampkit)
	NamespaceDir string

	// UserConfig is the user's top-level CLAUDE.md (ClaudeDir/CLAUDE.md)
	UserConfig string

	// LogsDir is the directory for ampkit runtime logs (inside the namespace)
	LogsDir string
}

// DefaultPaths returns the default paths for ampkit.
// The Claude directory can be overridden with environment variables:
// - AMPKIT_CLAUDE_DIR: Override the Claude configuration directory
func DefaultPaths() (*Paths, error) {
	claudeDir := os.Getenv("AMPKIT_CLAUDE_DIR")
	if claudeDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		claudeDir = filepath.Join(home, ".claude")
	}

	return PathsAt(claudeDir), nil
}

// PathsAt returns the paths rooted at the given Claude configuration
// directory. Used directly by tests to target a temp directory.
func PathsAt(claudeDir string) *Paths {
	return &Paths{
		ClaudeDir:    claudeDir,
		NamespaceDir: filepath.Join(claudeDir, Namespace),
		UserConfig:   filepath.Join(claudeDir, UserConfigName),
		LogsDir:      filepath.Join(claudeDir, Namespace, "runtime", "logs"),
	}
}

// EnsureClaudeDir creates the Claude configuration directory if it does not
// exist. It deliberately does not create the namespace directory: namespace
// existence is the installation signal, so only the installer creates it.
func (p *Paths) EnsureClaudeDir() error {
	if err := os.MkdirAll(p.ClaudeDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.ClaudeDir, err)
	}
	return nil
}
