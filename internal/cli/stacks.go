package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/andywolf/skillmatrix/internal/matrix"
	"github.com/spf13/cobra"
)

var stacksCmd = &cobra.Command{
	Use:   "stacks [stack-id]",
	Short: "List pre-built stacks",
	Long: `Without arguments, lists all stacks.
With a stack ID, shows the stack's skills resolved to canonical IDs.

Examples:
  skillmatrix stacks
  skillmatrix stacks react-fullstack`,
	Args: cobra.MaximumNArgs(1),
	RunE: listStacks,
}

func init() {
	rootCmd.AddCommand(stacksCmd)
}

func listStacks(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(args) == 1 {
		stack, ok := g.Stack(args[0])
		if !ok {
			return fmt.Errorf("unknown stack %q", args[0])
		}
		if yamlOutput() {
			return writeYAML(out, stack)
		}
		printStack(out, g, stack)
		return nil
	}

	stacks := g.Stacks()
	if yamlOutput() {
		return writeYAML(out, stacks)
	}
	if len(stacks) == 0 {
		fmt.Fprintln(out, "No stacks defined.")
		return nil
	}

	fmt.Fprintf(out, "%-24s %-28s %s\n", "STACK", "NAME", "SKILLS")
	fmt.Fprintln(out, strings.Repeat("-", 70))
	for _, s := range stacks {
		fmt.Fprintf(out, "%-24s %-28s %d\n", s.ID, s.Name, len(s.AllSkillIDs))
	}
	return nil
}

func printStack(out io.Writer, g *matrix.Graph, stack matrix.ResolvedStack) {
	fmt.Fprintf(out, "%s (%s)\n", stack.Name, stack.ID)
	if stack.Description != "" {
		fmt.Fprintf(out, "  %s\n", stack.Description)
	}
	if len(stack.Audience) > 0 {
		fmt.Fprintf(out, "  Audience: %s\n", strings.Join(stack.Audience, ", "))
	}

	for _, category := range sortedKeys(stack.Skills) {
		fmt.Fprintf(out, "  %s:\n", category)
		subs := stack.Skills[category]
		for _, sub := range sortedKeys(subs) {
			fmt.Fprintf(out, "    %-12s %s\n", sub, g.DisplayName(subs[sub]))
		}
	}

	if stack.Philosophy != "" {
		fmt.Fprintf(out, "  Philosophy: %s\n", strings.TrimSpace(stack.Philosophy))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
