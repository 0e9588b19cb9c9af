package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/ampkit/ampkit/internal/clock"
	"github.com/ampkit/ampkit/internal/config"
	"github.com/ampkit/ampkit/internal/engine"
	"github.com/ampkit/ampkit/internal/fsops"
	"github.com/ampkit/ampkit/internal/metrics"
	"github.com/ampkit/ampkit/internal/prompt"
)

// newEngine creates a new engine with real implementations of all
// dependencies. The consent function reads from the terminal; --yes bypasses
// it inside the engine.
func newEngine() (*engine.Engine, *config.Paths, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, nil, err
	}

	fs := fsops.NewRealFS()
	clk := &clock.RealClock{}
	consent := prompt.Terminal(os.Stdin, os.Stdout)

	return engine.New(fs, clk, paths, consent, rootCmd.Version), paths, nil
}

// recordMetric appends one metrics entry for a finished command. Best-effort:
// failures are ignored, and nothing is written when the namespace directory
// is absent (the log lives inside it, and recreating it would undo a reset).
func recordMetric(paths *config.Paths, command string, start time.Time, outcome string, cmdErr error) {
	if paths == nil {
		return
	}
	fs := fsops.NewRealFS()
	exists, err := fs.Exists(paths.NamespaceDir)
	if err != nil || !exists {
		return
	}

	clk := &clock.RealClock{}
	rec := metrics.NewRecorder(fs, clk, filepath.Join(paths.LogsDir, metrics.FileName))
	_ = rec.Record(command, outcome, time.Since(start), cmdErr)
}

// outcomeFor maps a command error to a metrics outcome.
func outcomeFor(err error) string {
	if err != nil {
		return metrics.OutcomeError
	}
	return metrics.OutcomeSuccess
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
