package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/ampkit/ampkit/internal/engine"
	"github.com/ampkit/ampkit/internal/payload"
	"github.com/ampkit/ampkit/internal/state"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage the CLAUDE.md integration",
	Long: `Inspect the installation state and manage the import line that activates the
installed framework from your CLAUDE.md.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current installation state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		tree, err := payload.Tree()
		if err != nil {
			return err
		}

		result, err := eng.Status(context.Background(), &engine.StatusRequest{Payload: tree})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(statusJSON(result))
		}

		PrintSection("Installation")
		PrintLabelValue("State", result.State.String())
		PrintLabelValue("Namespace", result.NamespaceDir)
		PrintLabelValue("Config", result.UserConfig)
		if result.Manifest != nil {
			PrintLabelValue("Version", result.Manifest.Version)
			PrintLabelValue("Installed at", result.Manifest.InstalledAt.Format(time.RFC3339))
			PrintLabelValue("Files", PrintCount(len(result.Manifest.Files), "file", "files"))
		}
		if result.Conflicts != nil && !result.Conflicts.Empty() {
			PrintInfo("")
			PrintInfo("Your files shadowing framework paths (left untouched):")
			PrintList(result.Conflicts.Paths(), 1)
		}
		return nil
	},
}

var configIntegrateCmd = &cobra.Command{
	Use:   "integrate",
	Short: "Add the import line to CLAUDE.md",
	Long: `Add the import line activating the installed framework to your CLAUDE.md.
Requires an existing installation; the file is backed up before any change.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, paths, err := newEngine()
		if err != nil {
			return err
		}

		start := time.Now()
		result, err := eng.Integrate(context.Background(), &engine.IntegrateRequest{})
		recordMetric(paths, "config integrate", start, outcomeFor(err), err)
		if err != nil {
			return err
		}

		if result.Changed {
			PrintSuccess("Added import line to " + paths.UserConfig)
			if result.BackupPath != "" {
				PrintLabelValue("Backup", result.BackupPath)
			}
		} else {
			PrintInfo("Import line already present in " + paths.UserConfig)
		}
		PrintLabelValue("State", result.State.String())
		return nil
	},
}

var configRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete the import line from CLAUDE.md",
	Long: `Delete the import line from your CLAUDE.md, deactivating the installed
framework without removing its files. The file is backed up before any change.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, paths, err := newEngine()
		if err != nil {
			return err
		}

		start := time.Now()
		result, err := eng.RemoveIntegration(context.Background(), &engine.RemoveIntegrationRequest{})
		recordMetric(paths, "config remove", start, outcomeFor(err), err)
		if err != nil {
			return err
		}

		if result.Changed {
			PrintSuccess("Removed import line from " + paths.UserConfig)
			if result.BackupPath != "" {
				PrintLabelValue("Backup", result.BackupPath)
			}
		} else {
			PrintInfo("Import line not present, nothing to remove")
		}
		PrintLabelValue("State", result.State.String())
		return nil
	},
}

var configResetDryRun bool

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Return to the not-installed state",
	Long: `Remove the namespace directory and delete the import line from your CLAUDE.md.
Your CLAUDE.md is backed up before the line is removed; everything else in
~/.claude is left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, paths, err := newEngine()
		if err != nil {
			return err
		}

		start := time.Now()
		result, err := eng.Reset(context.Background(), &engine.ResetRequest{DryRun: configResetDryRun})
		if !configResetDryRun {
			recordMetric(paths, "config reset", start, outcomeFor(err), err)
		}
		if err != nil {
			return err
		}

		printReset(result, paths.NamespaceDir, paths.UserConfig, configResetDryRun)
		return nil
	},
}

// printReset renders a reset result. Shared with the uninstall command, which
// performs the same operation.
func printReset(result *engine.ResetResult, namespaceDir, userConfig string, dryRun bool) {
	if dryRun {
		PrintSection("Dry Run")
		if result.RemovedNamespace {
			PrintInfo("Would remove " + namespaceDir)
		}
		if result.RemovedLine {
			PrintInfo("Would remove import line from " + userConfig)
		}
		if !result.RemovedNamespace && !result.RemovedLine {
			PrintInfo("Nothing to remove")
		}
		return
	}

	if result.RemovedNamespace {
		PrintSuccess("Removed " + namespaceDir)
	}
	if result.RemovedLine {
		PrintSuccess("Removed import line from " + userConfig)
		if result.BackupPath != "" {
			PrintLabelValue("Backup", result.BackupPath)
		}
	}
	if !result.RemovedNamespace && !result.RemovedLine {
		PrintInfo("Nothing to remove, already in the not-installed state")
	}
	PrintLabelValue("State", result.State.String())
}

// statusView is the JSON shape of 'config show --json'.
type statusView struct {
	State        string     `json:"state"`
	Integrated   bool       `json:"integrated"`
	NamespaceDir string     `json:"namespace_dir"`
	UserConfig   string     `json:"user_config"`
	Version      string     `json:"version,omitempty"`
	InstalledAt  *time.Time `json:"installed_at,omitempty"`
	Files        []string   `json:"files,omitempty"`
	Conflicts    []string   `json:"conflicts"`
}

func statusJSON(result *engine.StatusResult) statusView {
	view := statusView{
		State:        string(result.State),
		Integrated:   result.State == state.InstalledIntegrated,
		NamespaceDir: result.NamespaceDir,
		UserConfig:   result.UserConfig,
		Conflicts:    []string{},
	}
	if result.Manifest != nil {
		view.Version = result.Manifest.Version
		at := result.Manifest.InstalledAt
		view.InstalledAt = &at
		view.Files = result.Manifest.Files
	}
	if result.Conflicts != nil {
		view.Conflicts = result.Conflicts.Paths()
	}
	return view
}

func init() {
	configResetCmd.Flags().BoolVar(&configResetDryRun, "dry-run", false, "Show what would be removed without removing it")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configIntegrateCmd)
	configCmd.AddCommand(configRemoveCmd)
	configCmd.AddCommand(configResetCmd)
}
