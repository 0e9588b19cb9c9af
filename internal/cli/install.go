package cli

import (
	"context"
	"fmt"
	iofs "io/fs"
	"time"

	"github.com/spf13/cobra"

	"github.com/ampkit/ampkit/internal/engine"
	"github.com/ampkit/ampkit/internal/payload"
)

var (
	installYes    bool
	installFrom   string
	installDryRun bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the framework into the ampkit namespace",
	Long: `Install the bundled framework files into ~/.claude/ampkit and activate them
by adding the import line to your CLAUDE.md.

The namespace directory is always used, even on a clean system, so your own
files in ~/.claude are never overwritten. If you already have a CLAUDE.md you
will be asked before the import line is appended; refusing leaves the install
complete but inactive (activate later with 'ampkit config integrate').`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, paths, err := newEngine()
		if err != nil {
			return err
		}

		var tree iofs.FS
		if installFrom != "" {
			tree, err = payload.FromDir(installFrom)
		} else {
			tree, err = payload.Tree()
		}
		if err != nil {
			return err
		}

		start := time.Now()
		result, err := eng.Install(context.Background(), &engine.InstallRequest{
			Payload:   tree,
			AssumeYes: installYes,
			DryRun:    installDryRun,
		})
		if !installDryRun {
			defer func() { recordMetric(paths, "install", start, installOutcome(result, err), err) }()
		}
		if err != nil {
			return err
		}

		if installDryRun {
			PrintSection("Dry Run")
			PrintInfo(fmt.Sprintf("Would install %s into %s", PrintCount(len(result.Installed), "file", "files"), paths.NamespaceDir))
			PrintList(result.Installed, 1)
			printConflicts(result)
			return nil
		}

		PrintSuccess(fmt.Sprintf("Installed %s into %s", PrintCount(len(result.Installed), "file", "files"), paths.NamespaceDir))
		printConflicts(result)

		switch {
		case result.AlreadyIntegrated:
			PrintInfo("Import line already present in " + paths.UserConfig)
		case result.Integrated:
			PrintSuccess("Added import line to " + paths.UserConfig)
			if result.BackupPath != "" {
				PrintLabelValue("Backup", result.BackupPath)
			}
		case result.Declined:
			PrintWarning("Integration skipped. Activate later with: ampkit config integrate")
		}
		PrintLabelValue("State", result.State.String())
		return nil
	},
}

// printConflicts lists pre-existing user files that shadow payload paths.
// These are informational: namespacing leaves them untouched.
func printConflicts(result *engine.InstallResult) {
	if result.Conflicts == nil || result.Conflicts.Empty() {
		return
	}
	PrintInfo(fmt.Sprintf("Your existing files shadow %s (left untouched):",
		PrintCount(result.Conflicts.Len(), "framework path", "framework paths")))
	PrintList(result.Conflicts.Paths(), 1)
}

// installOutcome distinguishes a declined integration from a plain success.
func installOutcome(result *engine.InstallResult, err error) string {
	if err == nil && result != nil && result.Declined {
		return "declined"
	}
	return outcomeFor(err)
}

func init() {
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "Assume yes: integrate without prompting")
	installCmd.Flags().StringVar(&installFrom, "from", "", "Install from a local payload directory instead of the bundled files")
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "Show what would be installed without installing")
}
