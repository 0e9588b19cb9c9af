// Package integrate manages the single import line that activates the
// namespaced installation from the user's top-level CLAUDE.md.
//
// The user config file is user-owned: the only mutations this package ever
// performs are appending the import line and deleting it again, and every
// mutation is preceded by a timestamped backup of the pre-mutation content.
// Backups are never deleted automatically.
package integrate

import (
	"fmt"
	"strings"

	"github.com/ampkit/ampkit/internal/clock"
	"github.com/ampkit/ampkit/internal/fsops"
)

// Line is the import line whose presence in the user config file is the sole
// signal of integration. Claude resolves the @-reference to the CLAUDE.md at
// the root of the namespace directory.
const Line = "@~/.claude/ampkit/CLAUDE.md"

// BackupStamp is the timestamp layout used in backup file names.
const BackupStamp = "20060102-150405"

// ChangeResult describes the outcome of an Add or Remove operation.
type ChangeResult struct {
	// Changed is true if the file was actually modified.
	Changed bool

	// BackupPath is the backup taken before the mutation (empty if no
	// mutation happened, or if the file did not exist yet).
	BackupPath string

	// ConfigPath is the user config file that was inspected or modified.
	ConfigPath string
}

// Integrator adds and removes the import line in a user config file.
type Integrator struct {
	fs  fsops.FS
	clk clock.Clock
}

// New creates a new Integrator.
func New(fs fsops.FS, clk clock.Clock) *Integrator {
	return &Integrator{fs: fs, clk: clk}
}

// Present reports whether the import line is present in the file at path.
// A missing file means not integrated, not an error.
func (i *Integrator) Present(path string) (bool, error) {
	exists, err := i.fs.Exists(path)
	if err != nil {
		return false, fmt.Errorf("failed to check user config: %w", err)
	}
	if !exists {
		return false, nil
	}

	content, err := i.fs.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read user config: %w", err)
	}

	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == Line {
			return true, nil
		}
	}
	return false, nil
}

// Add appends the import line to the file at path. It is a no-op if the line
// is already present. When the file exists, a backup is taken before the
// write; when it does not, a new file containing only the line is created.
func (i *Integrator) Add(path string) (*ChangeResult, error) {
	result := &ChangeResult{ConfigPath: path}

	present, err := i.Present(path)
	if err != nil {
		return nil, err
	}
	if present {
		return result, nil
	}

	exists, err := i.fs.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check user config: %w", err)
	}

	var content []byte
	if exists {
		content, err = i.fs.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read user config: %w", err)
		}

		backupPath, err := i.backup(path, content)
		if err != nil {
			return nil, err
		}
		result.BackupPath = backupPath
	}

	updated := appendLine(content, Line)
	if err := i.fs.AtomicWrite(path, updated, 0644); err != nil {
		if result.BackupPath != "" {
			return result, fmt.Errorf("failed to write user config (original preserved at %s): %w", result.BackupPath, err)
		}
		return result, fmt.Errorf("failed to write user config: %w", err)
	}

	result.Changed = true
	return result, nil
}

// Remove deletes the import line from the file at path. It is a no-op if the
// line is absent or the file does not exist. A backup is taken before the
// write.
func (i *Integrator) Remove(path string) (*ChangeResult, error) {
	result := &ChangeResult{ConfigPath: path}

	present, err := i.Present(path)
	if err != nil {
		return nil, err
	}
	if !present {
		return result, nil
	}

	content, err := i.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read user config: %w", err)
	}

	backupPath, err := i.backup(path, content)
	if err != nil {
		return nil, err
	}
	result.BackupPath = backupPath

	updated := stripLine(content, Line)
	if err := i.fs.AtomicWrite(path, updated, 0644); err != nil {
		return result, fmt.Errorf("failed to write user config (original preserved at %s): %w", backupPath, err)
	}

	result.Changed = true
	return result, nil
}

// backup writes content to a timestamped sibling of path and returns the
// backup path. Backup files are named <original>.backup.<timestamp>.
func (i *Integrator) backup(path string, content []byte) (string, error) {
	backupPath := fmt.Sprintf("%s.backup.%s", path, i.clk.Now().Format(BackupStamp))
	if err := i.fs.AtomicWrite(backupPath, content, 0644); err != nil {
		return "", fmt.Errorf("failed to create backup: %w", err)
	}
	return backupPath, nil
}

// appendLine appends line to content, ensuring exactly one newline separates
// it from any existing content and that the file ends with a newline.
func appendLine(content []byte, line string) []byte {
	s := string(content)
	if s != "" && !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return []byte(s + line + "\n")
}

// stripLine removes every line whose trimmed content equals line.
func stripLine(content []byte, line string) []byte {
	lines := strings.Split(string(content), "\n")
	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) == line {
			continue
		}
		kept = append(kept, l)
	}
	return []byte(strings.Join(kept, "\n"))
}
