package engine

import (
	"context"
	"fmt"

	"github.com/ampkit/ampkit/internal/manifest"
	"github.com/ampkit/ampkit/internal/payload"
	"github.com/ampkit/ampkit/internal/state"
)

// Install installs the payload into the namespace directory and, with
// consent, activates it by adding the import line to the user config file.
//
// Algorithm steps:
//  1. Namespace copy runs unconditionally, even on a clean system. Any IO
//     failure here aborts before user-owned files are touched.
//  2. Conflict detection over the Claude directory (informational only:
//     namespacing means nothing of the user's is overwritten).
//  3. Integration decision, recomputed from disk:
//     - line already present: done, nothing to ask
//     - user config file absent: auto-integrate, no prompt
//     - otherwise: ask for consent; refusal leaves the install complete in
//     the installed-no-integration state
func (e *Engine) Install(ctx context.Context, req *InstallRequest) (*InstallResult, error) {
	if req.Payload == nil {
		return nil, fmt.Errorf("%w: install request has no payload", ErrValidation)
	}

	result := &InstallResult{}

	if req.DryRun {
		return e.installDryRun(req)
	}

	if err := e.paths.EnsureClaudeDir(); err != nil {
		return nil, err
	}

	// Step 1: namespace copy, always.
	installed, err := e.installer.Install(req.Payload, e.paths.NamespaceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to install namespace: %w", err)
	}
	result.Installed = installed

	m := &manifest.Manifest{
		Version:     e.version,
		InstalledAt: e.clock.Now().UTC(),
		Files:       installed,
	}
	if err := manifest.Write(e.fs, e.paths.NamespaceDir, m); err != nil {
		return nil, err
	}

	// Step 2: conflict report.
	report, err := e.detector.Check(e.paths.ClaudeDir, installed)
	if err != nil {
		return nil, fmt.Errorf("failed to detect conflicts: %w", err)
	}
	result.Conflicts = report

	// Step 3: integration, state recomputed from disk.
	present, err := e.integ.Present(e.paths.UserConfig)
	if err != nil {
		return nil, err
	}
	if present {
		result.AlreadyIntegrated = true
		result.State = state.InstalledIntegrated
		return result, nil
	}

	configExists, err := e.fs.Exists(e.paths.UserConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to check user config: %w", err)
	}

	agreed := true
	if configExists && !req.AssumeYes {
		result.Prompted = true
		question := fmt.Sprintf("Add the ampkit import line to %s?", e.paths.UserConfig)
		agreed, err = e.consent(question)
		if err != nil {
			return nil, fmt.Errorf("failed to get consent: %w", err)
		}
	}

	if !agreed {
		result.Declined = true
		result.State = state.InstalledNoIntegration
		return result, nil
	}

	change, err := e.integ.Add(e.paths.UserConfig)
	if err != nil {
		return nil, err
	}
	result.Integrated = change.Changed
	result.BackupPath = change.BackupPath
	result.State = state.InstalledIntegrated
	return result, nil
}

// installDryRun reports the planned install without touching the filesystem.
func (e *Engine) installDryRun(req *InstallRequest) (*InstallResult, error) {
	files, err := payload.List(req.Payload)
	if err != nil {
		return nil, err
	}

	report, err := e.detector.Check(e.paths.ClaudeDir, files)
	if err != nil {
		return nil, fmt.Errorf("failed to detect conflicts: %w", err)
	}

	current, err := e.State()
	if err != nil {
		return nil, err
	}

	return &InstallResult{
		State:             current,
		Installed:         files,
		Conflicts:         report,
		AlreadyIntegrated: current == state.InstalledIntegrated,
	}, nil
}
