package engine

import (
	"context"
	"fmt"

	"github.com/ampkit/ampkit/internal/manifest"
	"github.com/ampkit/ampkit/internal/payload"
)

// Status reports the current installation state, the recorded manifest, and
// (when the request carries a payload) the conflict report. Read-only.
func (e *Engine) Status(ctx context.Context, req *StatusRequest) (*StatusResult, error) {
	current, err := e.State()
	if err != nil {
		return nil, err
	}

	result := &StatusResult{
		State:        current,
		NamespaceDir: e.paths.NamespaceDir,
		UserConfig:   e.paths.UserConfig,
	}

	m, err := manifest.Load(e.fs, e.paths.NamespaceDir)
	if err != nil {
		return nil, err
	}
	result.Manifest = m

	if req.Payload != nil {
		files, err := payload.List(req.Payload)
		if err != nil {
			return nil, err
		}
		report, err := e.detector.Check(e.paths.ClaudeDir, files)
		if err != nil {
			return nil, fmt.Errorf("failed to detect conflicts: %w", err)
		}
		result.Conflicts = report
	}

	return result, nil
}
