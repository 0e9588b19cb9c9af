package engine

import (
	"context"
	"fmt"

	"github.com/ampkit/ampkit/internal/state"
)

// Reset returns the system to the not-installed state: the import line is
// removed from the user config file, then the namespace directory is deleted.
//
// The line is removed first so that a partial failure never leaves an import
// pointing at a deleted directory. Repeated resets are no-ops.
func (e *Engine) Reset(ctx context.Context, req *ResetRequest) (*ResetResult, error) {
	result := &ResetResult{}

	current, err := e.State()
	if err != nil {
		return nil, err
	}

	if req.DryRun {
		result.State = current
		present, err := e.integ.Present(e.paths.UserConfig)
		if err != nil {
			return nil, err
		}
		result.RemovedLine = present
		result.RemovedNamespace = current != state.NotInstalled
		return result, nil
	}

	change, err := e.integ.Remove(e.paths.UserConfig)
	if err != nil {
		return nil, err
	}
	result.RemovedLine = change.Changed
	result.BackupPath = change.BackupPath

	installed, err := e.fs.Exists(e.paths.NamespaceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to check namespace directory: %w", err)
	}
	if installed {
		if err := e.fs.RemoveAll(e.paths.NamespaceDir); err != nil {
			return nil, fmt.Errorf("failed to remove namespace directory: %w", err)
		}
		result.RemovedNamespace = true
	}

	result.State = state.NotInstalled
	return result, nil
}
