package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <ref>...",
	Short: "Resolve skill references to canonical IDs",
	Long: `Resolve aliases, directory paths and short forms to canonical skill IDs.

Examples:
  skillmatrix resolve react
  skillmatrix resolve frontend/framework/react "vue (@vince)"`,
	Args: cobra.MinimumNArgs(1),
	RunE: resolveRefs,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

type resolvedRef struct {
	Ref   string `yaml:"ref"`
	ID    string `yaml:"id"`
	Known bool   `yaml:"known"`
}

func resolveRefs(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	results := make([]resolvedRef, 0, len(args))
	for _, ref := range args {
		_, known := g.Skill(ref)
		results = append(results, resolvedRef{Ref: ref, ID: g.Resolve(ref), Known: known})
	}

	out := cmd.OutOrStdout()
	if yamlOutput() {
		return writeYAML(out, results)
	}

	for _, r := range results {
		suffix := ""
		if !r.Known {
			suffix = "  (unknown)"
		}
		fmt.Fprintf(out, "%s -> %s%s\n", r.Ref, r.ID, suffix)
	}
	return nil
}
