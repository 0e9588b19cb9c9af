package engine

import (
	"github.com/ampkit/ampkit/internal/conflict"
	"github.com/ampkit/ampkit/internal/manifest"
	"github.com/ampkit/ampkit/internal/state"
)

// InstallResult represents the result of an install.
type InstallResult struct {
	// State is the installation state after the operation.
	State state.Installation

	// Installed is the sorted list of payload-relative paths placed in the
	// namespace directory (what would be placed, for DryRun).
	Installed []string

	// Conflicts lists pre-existing user files a non-namespaced install would
	// have collided with. Informational: the namespace scheme leaves them
	// untouched.
	Conflicts *conflict.Report

	// Integrated is true if this operation added the import line.
	Integrated bool

	// AlreadyIntegrated is true if the line was present before the operation.
	AlreadyIntegrated bool

	// Declined is true if the user refused integration. Not an error: the
	// install completes in the installed-no-integration state.
	Declined bool

	// Prompted is true if the consent function was consulted.
	Prompted bool

	// BackupPath is the backup taken before the user config was modified
	// (empty if no mutation or no pre-existing file).
	BackupPath string
}

// IntegrateResult represents the result of adding the import line.
type IntegrateResult struct {
	// State is the installation state after the operation.
	State state.Installation

	// Changed is true if the user config file was modified.
	Changed bool

	// BackupPath is the backup taken before the mutation (empty if none).
	BackupPath string
}

// RemoveIntegrationResult represents the result of deleting the import line.
type RemoveIntegrationResult struct {
	// State is the installation state after the operation.
	State state.Installation

	// Changed is true if the user config file was modified.
	Changed bool

	// BackupPath is the backup taken before the mutation (empty if none).
	BackupPath string
}

// ResetResult represents the result of a reset.
type ResetResult struct {
	// State is the installation state after the operation.
	State state.Installation

	// RemovedNamespace is true if the namespace directory was deleted.
	RemovedNamespace bool

	// RemovedLine is true if the import line was deleted.
	RemovedLine bool

	// BackupPath is the backup taken before the import line was removed.
	BackupPath string
}

// StatusResult represents the current installation status.
type StatusResult struct {
	// State is the filesystem-derived installation state.
	State state.Installation

	// NamespaceDir is the tool-owned installation directory.
	NamespaceDir string

	// UserConfig is the user's top-level config file.
	UserConfig string

	// Manifest describes the recorded install, if a manifest exists.
	Manifest *manifest.Manifest

	// Conflicts lists user files shadowing payload paths (nil when the
	// status request carried no payload).
	Conflicts *conflict.Report
}
