package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaths_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("AMPKIT_CLAUDE_DIR", tmpDir)

	paths, err := DefaultPaths()
	if err != nil {
		t.Fatalf("DefaultPaths() error = %v", err)
	}

	if paths.ClaudeDir != tmpDir {
		t.Errorf("ClaudeDir = %q, want %q", paths.ClaudeDir, tmpDir)
	}
	if paths.NamespaceDir != filepath.Join(tmpDir, "ampkit") {
		t.Errorf("NamespaceDir = %q, want %q", paths.NamespaceDir, filepath.Join(tmpDir, "ampkit"))
	}
	if paths.UserConfig != filepath.Join(tmpDir, "CLAUDE.md") {
		t.Errorf("UserConfig = %q, want %q", paths.UserConfig, filepath.Join(tmpDir, "CLAUDE.md"))
	}
	if paths.LogsDir != filepath.Join(tmpDir, "ampkit", "runtime", "logs") {
		t.Errorf("LogsDir = %q, want %q", paths.LogsDir, filepath.Join(tmpDir, "ampkit", "runtime", "logs"))
	}
}

func TestDefaultPaths_HomeFallback(t *testing.T) {
	t.Setenv("AMPKIT_CLAUDE_DIR", "")
	home := t.TempDir()
	t.Setenv("HOME", home)

	paths, err := DefaultPaths()
	if err != nil {
		t.Fatalf("DefaultPaths() error = %v", err)
	}

	want := filepath.Join(home, ".claude")
	if paths.ClaudeDir != want {
		t.Errorf("ClaudeDir = %q, want %q", paths.ClaudeDir, want)
	}
}

func TestEnsureClaudeDir(t *testing.T) {
	tmpDir := t.TempDir()
	paths := PathsAt(filepath.Join(tmpDir, "nested", ".claude"))

	if err := paths.EnsureClaudeDir(); err != nil {
		t.Fatalf("EnsureClaudeDir() error = %v", err)
	}

	info, err := os.Stat(paths.ClaudeDir)
	if err != nil {
		t.Fatalf("claude dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("claude dir is not a directory")
	}

	// The namespace directory must NOT be created here: its existence is the
	// installation signal.
	if _, err := os.Stat(paths.NamespaceDir); !os.IsNotExist(err) {
		t.Errorf("namespace dir should not exist after EnsureClaudeDir, stat err = %v", err)
	}

	// Idempotent
	if err := paths.EnsureClaudeDir(); err != nil {
		t.Fatalf("second EnsureClaudeDir() error = %v", err)
	}
}
