package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errInvalidSelection makes check exit non-zero without repeating the report.
var errInvalidSelection = errors.New("selection is invalid")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a complete selection",
	Long: `Validate a selection against the relationship matrix and category rules.

Conflicts, unmet requirements and exclusive-category violations are errors
(warnings with --expert). Discouraged pairs and missing recommendations are
always warnings. The command exits non-zero when the selection is invalid.

With --watch the catalog directory is watched and the selection is
re-checked whenever a catalog file changes.

Examples:
  skillmatrix check --select react,zustand,tailwind
  skillmatrix check --select @react-fullstack,redux
  skillmatrix check --watch`,
	Args: cobra.NoArgs,
	RunE: checkSelection,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringSlice("select", nil, "Selection to validate (skills or @stack)")
	checkCmd.Flags().Bool("watch", false, "Re-check when the catalog changes")
}

func checkSelection(cmd *cobra.Command, args []string) error {
	selectFlag, _ := cmd.Flags().GetStringSlice("select")
	watch, _ := cmd.Flags().GetBool("watch")

	valid, err := runCheck(cmd, selectFlag)
	if !watch {
		if err != nil {
			return err
		}
		if !valid {
			cmd.SilenceErrors = true
			return errInvalidSelection
		}
		return nil
	}
	if err != nil {
		logger.Error("Check failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching %s for changes (Ctrl+C to stop)\n", cfg.Catalog.Path)
	return watchCatalog(ctx, cfg.Catalog.Path, watchDebounce, func() {
		fmt.Fprintln(cmd.OutOrStdout())
		if _, err := runCheck(cmd, selectFlag); err != nil {
			logger.Error("Check failed", zap.Error(err))
		}
	})
}

func runCheck(cmd *cobra.Command, selectFlag []string) (bool, error) {
	g, err := loadGraph()
	if err != nil {
		return false, err
	}

	selection, err := currentSelection(g, selectFlag)
	if err != nil {
		return false, err
	}

	result := g.ValidateSelection(selection, matrixOptions())

	out := cmd.OutOrStdout()
	if yamlOutput() {
		if err := writeYAML(out, result); err != nil {
			return false, err
		}
		return result.Valid, nil
	}

	fmt.Fprintf(out, "Selection: %s\n", skillNames(g, selection))
	printIssues(out, "Errors", result.Errors)
	printIssues(out, "Warnings", result.Warnings)
	if result.Valid {
		fmt.Fprintln(out, "Selection is valid.")
	}
	return result.Valid, nil
}
