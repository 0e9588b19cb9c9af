package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/ampkit/ampkit/internal/engine"
)

var uninstallDryRun bool

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the namespace directory and the import line",
	Long: `Remove the ampkit namespace directory and delete the import line from your
CLAUDE.md, returning the system to the not-installed state.

Your CLAUDE.md is backed up before the line is removed. Everything else in
~/.claude is left untouched. Equivalent to 'ampkit config reset'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, paths, err := newEngine()
		if err != nil {
			return err
		}

		start := time.Now()
		result, err := eng.Reset(context.Background(), &engine.ResetRequest{DryRun: uninstallDryRun})
		if !uninstallDryRun {
			recordMetric(paths, "uninstall", start, outcomeFor(err), err)
		}
		if err != nil {
			return err
		}

		printReset(result, paths.NamespaceDir, paths.UserConfig, uninstallDryRun)
		return nil
	},
}

func init() {
	uninstallCmd.Flags().BoolVar(&uninstallDryRun, "dry-run", false, "Show what would be removed without removing it")
}
