package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/andywolf/skillmatrix/internal/cli/wizard"
	"github.com/andywolf/skillmatrix/internal/matrix"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Build a selection interactively",
	Long: `Walk through each category and pick skills. Options that conflict with
the current selection or have unmet requirements are hidden (shown with
--expert); recommended and discouraged options are annotated.

Examples:
  skillmatrix select
  skillmatrix select --stack react-fullstack --save`,
	Args: cobra.NoArgs,
	RunE: selectSkills,
}

func init() {
	rootCmd.AddCommand(selectCmd)

	selectCmd.Flags().String("stack", "", "Start from a pre-built stack")
	selectCmd.Flags().StringSlice("select", nil, "Start from this selection (skills or @stack)")
	selectCmd.Flags().Bool("save", false, "Write the selection to the config file")
}

func selectSkills(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	selectFlag, _ := cmd.Flags().GetStringSlice("select")
	if stackID, _ := cmd.Flags().GetString("stack"); stackID != "" {
		selectFlag = append([]string{stackPrefix + stackID}, selectFlag...)
	}
	initial, err := currentSelection(g, selectFlag)
	if err != nil {
		return err
	}

	selection, err := wizard.SelectSkills(g, initial, matrixOptions())
	if err != nil {
		if errors.Is(err, wizard.ErrAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "Selection discarded.")
			return nil
		}
		return err
	}

	out := cmd.OutOrStdout()
	refs := selectionRefs(g, selection)
	if yamlOutput() {
		if err := writeYAML(out, refs); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(out, "Selected %d skills:\n", len(selection))
		for _, id := range selection {
			fmt.Fprintf(out, "  %s (%s)\n", g.DisplayName(id), id)
		}
	}

	save, _ := cmd.Flags().GetBool("save")
	if !save {
		return nil
	}

	path := viper.ConfigFileUsed()
	if path == "" {
		path = configFileName
	}
	if err := saveSelection(path, refs); err != nil {
		return err
	}
	logger.Info("Saved selection", zap.String("path", path), zap.Int("skills", len(refs)))
	return nil
}

// selectionRefs prefers aliases so saved selections stay readable.
func selectionRefs(g *matrix.Graph, ids []string) []string {
	refs := make([]string, 0, len(ids))
	for _, id := range ids {
		if alias, ok := g.Alias(id); ok && g.Resolve(alias) == id {
			refs = append(refs, alias)
			continue
		}
		refs = append(refs, id)
	}
	return refs
}

// saveSelection sets selection.skills in the YAML file at path, keeping the
// file's other settings. The file is created when missing.
func saveSelection(path string, refs []string) error {
	doc := map[string]any{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if doc == nil {
			doc = map[string]any{}
		}
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	section, _ := doc["selection"].(map[string]any)
	if section == nil {
		section = map[string]any{}
	}
	section["skills"] = refs
	doc["selection"] = section

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
