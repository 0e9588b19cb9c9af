package engine

import "io/fs"

// InstallRequest represents a request to install the framework.
type InstallRequest struct {
	// Payload is the file tree to install into the namespace directory.
	Payload fs.FS

	// AssumeYes skips the consent prompt and integrates unconditionally.
	AssumeYes bool

	// DryRun reports what would happen without touching the filesystem.
	DryRun bool
}

// IntegrateRequest represents a request to add the import line.
type IntegrateRequest struct{}

// RemoveIntegrationRequest represents a request to delete the import line.
type RemoveIntegrationRequest struct{}

// ResetRequest represents a request to return to the not-installed state.
type ResetRequest struct {
	// DryRun reports what would be removed without removing it.
	DryRun bool
}

// StatusRequest represents a request for the current installation status.
type StatusRequest struct {
	// Payload is used to compute the conflict report; optional.
	Payload fs.FS
}
