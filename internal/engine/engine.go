// Package engine provides the core business logic for ampkit operations.
//
// The engine is the orchestration layer between CLI commands and the
// lower-level components. It sequences conflict detection, namespace
// installation, and integration into idempotent install/uninstall flows,
// always recomputing installation state from disk before each decision.
//
// Key components:
//   - Engine: main orchestrator called by the CLI
//   - Install: namespace copy, conflict report, consent-gated integration
//   - Reset: full return to the not-installed state
//   - Integrate/RemoveIntegration: explicit import-line management
//   - Status: filesystem-derived installation state for display
package engine

import (
	"github.com/ampkit/ampkit/internal/clock"
	"github.com/ampkit/ampkit/internal/config"
	"github.com/ampkit/ampkit/internal/conflict"
	"github.com/ampkit/ampkit/internal/fsops"
	"github.com/ampkit/ampkit/internal/installer"
	"github.com/ampkit/ampkit/internal/integrate"
	"github.com/ampkit/ampkit/internal/prompt"
	"github.com/ampkit/ampkit/internal/state"
)

// Engine orchestrates all ampkit operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs        fsops.FS
	clock     clock.Clock
	paths     *config.Paths
	consent   prompt.ConsentFunc
	version   string
	installer *installer.Installer
	detector  *conflict.Detector
	integ     *integrate.Integrator
}

// New creates a new Engine with the given dependencies. The consent function
// is asked before the user's config file is first modified; pass
// prompt.Always for non-interactive use.
func New(
	fs fsops.FS,
	clk clock.Clock,
	paths *config.Paths,
	consent prompt.ConsentFunc,
	version string,
) *Engine {
	return &Engine{
		fs:        fs,
		clock:     clk,
		paths:     paths,
		consent:   consent,
		version:   version,
		installer: installer.New(fs),
		detector:  conflict.NewDetector(fs),
		integ:     integrate.New(fs, clk),
	}
}

// State recomputes the installation state from disk. Never cached: every
// decision inside the engine calls this fresh.
func (e *Engine) State() (state.Installation, error) {
	return state.Detect(e.fs, e.integ, e.paths)
}
