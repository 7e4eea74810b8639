package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var depsCmd = &cobra.Command{
	Use:   "deps <skill>",
	Short: "Show selected skills that depend on a skill",
	Long: `List the selected skills that directly or transitively require a skill,
i.e. what would be left with unmet requirements if it were deselected.

Example:
  skillmatrix deps react --select react,zustand,vitest,rtl`,
	Args: cobra.ExactArgs(1),
	RunE: showDependents,
}

func init() {
	rootCmd.AddCommand(depsCmd)

	depsCmd.Flags().StringSlice("select", nil, "Current selection (skills or @stack)")
}

type dependentsReport struct {
	Skill      string   `yaml:"skill"`
	Dependents []string `yaml:"dependents"`
}

func showDependents(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	selectFlag, _ := cmd.Flags().GetStringSlice("select")
	selection, err := currentSelection(g, selectFlag)
	if err != nil {
		return err
	}

	report := dependentsReport{
		Skill:      g.Resolve(args[0]),
		Dependents: g.DependentsOf(args[0], selection),
	}

	out := cmd.OutOrStdout()
	if yamlOutput() {
		return writeYAML(out, report)
	}

	if len(report.Dependents) == 0 {
		fmt.Fprintf(out, "No selected skills depend on %s.\n", g.DisplayName(report.Skill))
		return nil
	}
	fmt.Fprintf(out, "Deselecting %s would strand:\n", g.DisplayName(report.Skill))
	for _, id := range report.Dependents {
		fmt.Fprintf(out, "  %s (%s)\n", g.DisplayName(id), id)
	}
	return nil
}
