package manifest

import (
	"reflect"
	"testing"
	"time"

	"github.com/ampkit/ampkit/internal/fsops"
)

func TestWriteLoad_RoundTrip(t *testing.T) {
	fs := fsops.NewRealFS()
	dir := t.TempDir()

	in := &Manifest{
		Version:     "1.2.0",
		InstalledAt: time.Date(2026, 8, 23, 14, 30, 0, 0, time.UTC),
		Files:       []string{"CLAUDE.md", "agents/reviewer.md"},
	}
	if err := Write(fs, dir, in); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	out, err := Load(fs, dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if out == nil {
		t.Fatal("Load() = nil, want manifest")
	}

	if out.Version != in.Version {
		t.Errorf("Version = %q, want %q", out.Version, in.Version)
	}
	if !out.InstalledAt.Equal(in.InstalledAt) {
		t.Errorf("InstalledAt = %v, want %v", out.InstalledAt, in.InstalledAt)
	}
	if !reflect.DeepEqual(out.Files, in.Files) {
		t.Errorf("Files = %v, want %v", out.Files, in.Files)
	}
}

func TestLoad_MissingManifestIsNotAnError(t *testing.T) {
	fs := fsops.NewRealFS()

	m, err := Load(fs, t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m != nil {
		t.Errorf("Load() = %+v, want nil for missing manifest", m)
	}
}

func TestLoad_CorruptManifest(t *testing.T) {
	fs := fsops.NewRealFS()
	dir := t.TempDir()

	if err := fs.AtomicWrite(dir+"/"+FileName, []byte("version = [unclosed"), 0644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := Load(fs, dir); err == nil {
		t.Error("Load() on corrupt manifest succeeded, want error")
	}
}
