package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/andywolf/skillmatrix/internal/matrix"
	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List skills in the catalog",
	Long: `List skills, optionally limited to one category. With --select each
skill is annotated with its availability against that selection.

Examples:
  skillmatrix skills
  skillmatrix skills --category state --select react`,
	Args: cobra.NoArgs,
	RunE: listSkills,
}

var showCmd = &cobra.Command{
	Use:   "show <skill>",
	Short: "Show a skill with its resolved relationships",
	Args:  cobra.ExactArgs(1),
	RunE:  showSkill,
}

func init() {
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(showCmd)

	skillsCmd.Flags().String("category", "", "Only list skills in this category")
	skillsCmd.Flags().StringSlice("select", nil, "Current selection (skills or @stack)")
}

type skillRow struct {
	ID           string `yaml:"id"`
	Alias        string `yaml:"alias,omitempty"`
	Name         string `yaml:"name"`
	Category     string `yaml:"category"`
	Selected     bool   `yaml:"selected,omitempty"`
	Availability string `yaml:"availability,omitempty"`
}

func listSkills(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	category, _ := cmd.Flags().GetString("category")
	selectFlag, _ := cmd.Flags().GetStringSlice("select")
	selection, err := currentSelection(g, selectFlag)
	if err != nil {
		return err
	}

	var options []matrix.SkillOption
	if category != "" {
		if _, ok := g.Category(category); !ok {
			return fmt.Errorf("unknown category %q", category)
		}
		options = g.AvailableInCategory(category, selection, matrixOptions())
	} else {
		for _, s := range g.Skills() {
			options = append(options, matrix.SkillOption{
				Skill:        s,
				Selected:     containsID(selection, s.ID),
				Availability: g.Availability(s.ID, selection, matrixOptions()),
			})
		}
	}

	rows := make([]skillRow, 0, len(options))
	for _, o := range options {
		rows = append(rows, skillRow{
			ID:           o.Skill.ID,
			Alias:        o.Skill.Alias,
			Name:         o.Skill.DisplayName(),
			Category:     o.Skill.Category,
			Selected:     o.Selected,
			Availability: availabilityLabel(o.Availability),
		})
	}

	out := cmd.OutOrStdout()
	if yamlOutput() {
		return writeYAML(out, rows)
	}

	if len(rows) == 0 {
		fmt.Fprintln(out, "No skills found.")
		return nil
	}

	fmt.Fprintf(out, "  %-45s %-12s %-14s %s\n", "ID", "ALIAS", "CATEGORY", "STATUS")
	fmt.Fprintln(out, strings.Repeat("-", 90))
	for _, r := range rows {
		mark := " "
		if r.Selected {
			mark = "*"
		}
		fmt.Fprintf(out, "%s %-45s %-12s %-14s %s\n", mark, r.ID, r.Alias, r.Category, r.Availability)
	}
	return nil
}

func showSkill(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	skill, ok := g.Skill(args[0])
	if !ok {
		return fmt.Errorf("unknown skill %q", args[0])
	}

	out := cmd.OutOrStdout()
	if yamlOutput() {
		return writeYAML(out, skill)
	}

	fmt.Fprintf(out, "%s\n", skill.DisplayName())
	fmt.Fprintf(out, "  ID:          %s\n", skill.ID)
	if skill.Alias != "" {
		fmt.Fprintf(out, "  Alias:       %s\n", skill.Alias)
	}
	fmt.Fprintf(out, "  Category:    %s\n", skill.Category)
	if skill.Description != "" {
		fmt.Fprintf(out, "  Description: %s\n", skill.Description)
	}
	printRelations(out, g, "Conflicts with", skill.ConflictsWith)
	printRelations(out, g, "Recommends", skill.Recommends)
	printRelations(out, g, "Recommended by", skill.RecommendedBy)
	for _, group := range skill.Requires {
		mode := "all of"
		if group.NeedsAny {
			mode = "one of"
		}
		fmt.Fprintf(out, "  Requires %s: %s\n", mode, skillNames(g, group.SkillIDs))
	}
	printRelations(out, g, "Required by", skill.RequiredBy)
	printRelations(out, g, "Alternatives", skill.Alternatives)
	printRelations(out, g, "Discourages", skill.Discourages)
	if len(skill.RequiresSetup) > 0 {
		fmt.Fprintf(out, "  Needs setup from: %s\n", skillNames(g, skill.RequiresSetup))
	}
	if len(skill.ProvidesSetupFor) > 0 {
		fmt.Fprintf(out, "  Provides setup for: %s\n", skillNames(g, skill.ProvidesSetupFor))
	}
	return nil
}

func printRelations(out io.Writer, g *matrix.Graph, title string, rels []matrix.Relation) {
	if len(rels) == 0 {
		return
	}
	fmt.Fprintf(out, "  %s: %s\n", title, relationNames(g, rels))
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
