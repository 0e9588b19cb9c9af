package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ampkit/ampkit/internal/integrate"
	"github.com/ampkit/ampkit/internal/state"
)

func TestReset_RemovesNamespaceAndLine(t *testing.T) {
	eng, paths, _ := newTestEngine(t, nil)

	if _, err := eng.Install(context.Background(), &InstallRequest{Payload: testPayload(), AssumeYes: true}); err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	result, err := eng.Reset(context.Background(), &ResetRequest{})
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	if result.State != state.NotInstalled {
		t.Errorf("State = %v, want %v", result.State, state.NotInstalled)
	}
	if !result.RemovedNamespace {
		t.Error("RemovedNamespace = false, want true")
	}
	if !result.RemovedLine {
		t.Error("RemovedLine = false, want true")
	}
	if result.BackupPath == "" {
		t.Error("BackupPath empty, want backup before line removal")
	}

	if _, err := os.Stat(paths.NamespaceDir); !os.IsNotExist(err) {
		t.Errorf("namespace dir still present, stat err = %v", err)
	}
	data, err := os.ReadFile(paths.UserConfig)
	if err != nil {
		t.Fatalf("user config gone after reset: %v", err)
	}
	if string(data) == integrate.Line+"\n" {
		t.Errorf("import line still present: %q", data)
	}
}

func TestReset_Idempotent(t *testing.T) {
	eng, _, _ := newTestEngine(t, nil)

	first, err := eng.Reset(context.Background(), &ResetRequest{})
	if err != nil {
		t.Fatalf("Reset() on clean system error = %v", err)
	}
	if first.RemovedNamespace || first.RemovedLine {
		t.Errorf("Reset() on clean system removed something: %+v", first)
	}
	if first.State != state.NotInstalled {
		t.Errorf("State = %v, want %v", first.State, state.NotInstalled)
	}

	second, err := eng.Reset(context.Background(), &ResetRequest{})
	if err != nil {
		t.Fatalf("second Reset() error = %v", err)
	}
	if second.RemovedNamespace || second.RemovedLine {
		t.Errorf("second Reset() removed something: %+v", second)
	}
}

func TestReset_ThenInstallReproducesCleanInstall(t *testing.T) {
	// Reversibility: reset followed by install matches a direct install on a
	// clean system (modulo timestamped backups, which are never deleted).
	engA, pathsA, _ := newTestEngine(t, nil)
	if _, err := engA.Install(context.Background(), &InstallRequest{Payload: testPayload(), AssumeYes: true}); err != nil {
		t.Fatalf("direct Install() error = %v", err)
	}
	clean := snapshot(t, pathsA.ClaudeDir)

	engB, pathsB, _ := newTestEngine(t, nil)
	if _, err := engB.Install(context.Background(), &InstallRequest{Payload: testPayload(), AssumeYes: true}); err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if _, err := engB.Reset(context.Background(), &ResetRequest{}); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if _, err := engB.Install(context.Background(), &InstallRequest{Payload: testPayload(), AssumeYes: true}); err != nil {
		t.Fatalf("reinstall error = %v", err)
	}
	redone := snapshot(t, pathsB.ClaudeDir)

	for rel, content := range clean {
		if redone[rel] != content {
			t.Errorf("file %s differs after reset+install:\n clean: %q\nredone: %q", rel, content, redone[rel])
		}
	}
}

func TestReset_DryRun(t *testing.T) {
	eng, paths, _ := newTestEngine(t, nil)
	if _, err := eng.Install(context.Background(), &InstallRequest{Payload: testPayload(), AssumeYes: true}); err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	result, err := eng.Reset(context.Background(), &ResetRequest{DryRun: true})
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if !result.RemovedNamespace || !result.RemovedLine {
		t.Errorf("dry run plan = %+v, want both removals planned", result)
	}

	// Nothing actually removed.
	if _, err := os.Stat(filepath.Join(paths.NamespaceDir, "CLAUDE.md")); err != nil {
		t.Errorf("dry run removed namespace content: %v", err)
	}
	current, err := eng.State()
	if err != nil {
		t.Fatalf("State() error = %v", err)
	}
	if current != state.InstalledIntegrated {
		t.Errorf("state after dry run = %v, want %v", current, state.InstalledIntegrated)
	}
}
