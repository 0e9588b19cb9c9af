package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ampkit/ampkit/internal/state"
)

func TestStatus_CleanSystem(t *testing.T) {
	eng, paths, _ := newTestEngine(t, nil)

	result, err := eng.Status(context.Background(), &StatusRequest{})
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}

	if result.State != state.NotInstalled {
		t.Errorf("State = %v, want %v", result.State, state.NotInstalled)
	}
	if result.Manifest != nil {
		t.Errorf("Manifest = %+v, want nil", result.Manifest)
	}
	if result.NamespaceDir != paths.NamespaceDir {
		t.Errorf("NamespaceDir = %q, want %q", result.NamespaceDir, paths.NamespaceDir)
	}
}

func TestStatus_AfterInstall(t *testing.T) {
	eng, paths, clk := newTestEngine(t, nil)

	if _, err := eng.Install(context.Background(), &InstallRequest{Payload: testPayload(), AssumeYes: true}); err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	result, err := eng.Status(context.Background(), &StatusRequest{Payload: testPayload()})
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}

	if result.State != state.InstalledIntegrated {
		t.Errorf("State = %v, want %v", result.State, state.InstalledIntegrated)
	}
	if result.Manifest == nil {
		t.Fatal("Manifest = nil, want recorded install")
	}
	if result.Manifest.Version != "1.0.0-test" {
		t.Errorf("Manifest.Version = %q, want %q", result.Manifest.Version, "1.0.0-test")
	}
	if !result.Manifest.InstalledAt.Equal(clk.Now().UTC()) {
		t.Errorf("Manifest.InstalledAt = %v, want %v", result.Manifest.InstalledAt, clk.Now().UTC())
	}
	if len(result.Manifest.Files) != 3 {
		t.Errorf("Manifest.Files = %v, want 3 entries", result.Manifest.Files)
	}
	// Integration created the user's CLAUDE.md, which by definition shadows
	// the payload root in a hypothetical non-namespaced install.
	if result.Conflicts == nil || result.Conflicts.Len() != 1 || result.Conflicts.Paths()[0] != "CLAUDE.md" {
		t.Errorf("Conflicts = %v, want [CLAUDE.md]", result.Conflicts)
	}

	// Status is read-only.
	if _, err := os.Stat(filepath.Join(paths.NamespaceDir, "manifest.toml")); err != nil {
		t.Errorf("manifest missing after status: %v", err)
	}
}

func TestStatus_ReportsShadowingUserFiles(t *testing.T) {
	eng, paths, _ := newTestEngine(t, nil)

	if err := os.MkdirAll(paths.ClaudeDir, 0755); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := os.WriteFile(paths.UserConfig, []byte("# mine\n"), 0644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	result, err := eng.Status(context.Background(), &StatusRequest{Payload: testPayload()})
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}

	if result.Conflicts == nil || result.Conflicts.Len() != 1 {
		t.Fatalf("Conflicts = %v, want exactly CLAUDE.md", result.Conflicts)
	}
	if result.Conflicts.Paths()[0] != "CLAUDE.md" {
		t.Errorf("Conflicts = %v, want [CLAUDE.md]", result.Conflicts.Paths())
	}
}
