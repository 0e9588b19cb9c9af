// Package metrics appends one JSON line per CLI invocation to a log inside
// the namespace directory.
//
// Recording is best-effort: a metrics failure must never fail the command it
// describes. The log is append-only and lives in tool-owned territory, so no
// backup is taken.
package metrics

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ampkit/ampkit/internal/clock"
	"github.com/ampkit/ampkit/internal/fsops"
)

// FileName is the metrics log file name inside the logs directory.
const FileName = "metrics.jsonl"

// Entry is a single metrics record.
type Entry struct {
	// Timestamp is when the command finished, RFC3339.
	Timestamp time.Time `json:"timestamp"`

	// RunID identifies the CLI invocation.
	RunID string `json:"run_id"`

	// Command is the full command path, e.g. "config integrate".
	Command string `json:"command"`

	// Outcome is "success", "error", or "declined".
	Outcome string `json:"outcome"`

	// DurationMS is the command duration in milliseconds.
	DurationMS int64 `json:"duration_ms"`

	// Error is the error text for failed commands.
	Error string `json:"error,omitempty"`
}

// Outcome values.
const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeDeclined = "declined"
)

// Recorder appends entries to a JSONL log file.
type Recorder struct {
	fs    fsops.FS
	clk   clock.Clock
	path  string
	runID string
}

// NewRecorder creates a Recorder writing to path. Each Recorder carries one
// random run ID shared by all entries it writes.
func NewRecorder(fs fsops.FS, clk clock.Clock, path string) *Recorder {
	return &Recorder{
		fs:    fs,
		clk:   clk,
		path:  path,
		runID: uuid.NewString(),
	}
}

// RunID returns the recorder's invocation ID.
func (r *Recorder) RunID() string {
	return r.runID
}

// Record appends one entry to the log.
func (r *Recorder) Record(command, outcome string, duration time.Duration, cmdErr error) error {
	entry := Entry{
		Timestamp:  r.clk.Now().UTC(),
		RunID:      r.runID,
		Command:    command,
		Outcome:    outcome,
		DurationMS: duration.Milliseconds(),
	}
	if cmdErr != nil {
		entry.Error = cmdErr.Error()
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode metrics entry: %w", err)
	}
	line = append(line, '\n')

	if err := r.fs.Append(r.path, line, 0644); err != nil {
		return fmt.Errorf("failed to append metrics entry: %w", err)
	}
	return nil
}
