package cli

import (
	"fmt"
	"io"

	"github.com/andywolf/skillmatrix/internal/catalog"
	"github.com/andywolf/skillmatrix/internal/matrix"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show the category tree",
	Long: `Show top-level categories and their subcategories in display order.
With --select, categories in which every skill is disabled are flagged.`,
	Args: cobra.NoArgs,
	RunE: listCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)

	categoriesCmd.Flags().StringSlice("select", nil, "Current selection (skills or @stack)")
}

type categoryNode struct {
	ID             string         `yaml:"id"`
	Name           string         `yaml:"name"`
	Exclusive      bool           `yaml:"exclusive,omitempty"`
	Required       bool           `yaml:"required,omitempty"`
	Skills         int            `yaml:"skills"`
	Disabled       bool           `yaml:"disabled,omitempty"`
	DisabledReason string         `yaml:"disabled_reason,omitempty"`
	Subcategories  []categoryNode `yaml:"subcategories,omitempty"`
}

func listCategories(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	selectFlag, _ := cmd.Flags().GetStringSlice("select")
	selection, err := currentSelection(g, selectFlag)
	if err != nil {
		return err
	}

	tree := buildCategoryTree(g, selection, matrixOptions())

	out := cmd.OutOrStdout()
	if yamlOutput() {
		return writeYAML(out, tree)
	}
	for _, node := range tree {
		printCategory(out, node, 0)
	}
	return nil
}

func buildCategoryTree(g *matrix.Graph, selection []string, opts matrix.Options) []categoryNode {
	var build func(c catalog.Category) categoryNode
	build = func(c catalog.Category) categoryNode {
		node := categoryNode{
			ID:        c.ID,
			Name:      c.Name,
			Exclusive: c.Exclusive,
			Required:  c.Required,
			Skills:    len(g.SkillsInCategory(c.ID)),
		}
		node.Disabled, node.DisabledReason = g.IsCategoryFullyDisabled(c.ID, selection, opts)
		for _, sub := range g.Subcategories(c.ID) {
			node.Subcategories = append(node.Subcategories, build(sub))
		}
		return node
	}

	var tree []categoryNode
	for _, top := range g.TopLevelCategories() {
		tree = append(tree, build(top))
	}
	return tree
}

func printCategory(out io.Writer, node categoryNode, depth int) {
	flags := ""
	if node.Exclusive {
		flags += " [exclusive]"
	}
	if node.Required {
		flags += " [required]"
	}
	if node.Disabled {
		flags += " (" + withReason("disabled", node.DisabledReason) + ")"
	}

	fmt.Fprintf(out, "%*s%s (%s, %d skills)%s\n", depth*2, "", node.Name, node.ID, node.Skills, flags)
	for _, sub := range node.Subcategories {
		printCategory(out, sub, depth+1)
	}
}
