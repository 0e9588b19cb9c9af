package engine

import (
	"context"
	"fmt"
)

// Integrate adds the import line to the user config file. Unlike Install,
// this command is an explicit request, so no consent prompt is involved.
// It requires an existing namespace installation: an import line pointing at
// nothing would break the user's Claude setup.
func (e *Engine) Integrate(ctx context.Context, req *IntegrateRequest) (*IntegrateResult, error) {
	installed, err := e.fs.Exists(e.paths.NamespaceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to check namespace directory: %w", err)
	}
	if !installed {
		return nil, fmt.Errorf("%w: run `ampkit install` first", ErrNotInstalled)
	}

	change, err := e.integ.Add(e.paths.UserConfig)
	if err != nil {
		return nil, err
	}

	current, err := e.State()
	if err != nil {
		return nil, err
	}

	return &IntegrateResult{
		State:      current,
		Changed:    change.Changed,
		BackupPath: change.BackupPath,
	}, nil
}

// RemoveIntegration deletes the import line from the user config file. The
// namespace installation stays in place. A no-op when the line is absent,
// including when nothing is installed at all.
func (e *Engine) RemoveIntegration(ctx context.Context, req *RemoveIntegrationRequest) (*RemoveIntegrationResult, error) {
	change, err := e.integ.Remove(e.paths.UserConfig)
	if err != nil {
		return nil, err
	}

	current, err := e.State()
	if err != nil {
		return nil, err
	}

	return &RemoveIntegrationResult{
		State:      current,
		Changed:    change.Changed,
		BackupPath: change.BackupPath,
	}, nil
}
