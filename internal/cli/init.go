package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/andywolf/skillmatrix/internal/catalog"
	"github.com/andywolf/skillmatrix/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const configFileName = ".skillmatrix.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize project configuration",
	Long: `Initialize skillmatrix configuration for the current project.

This creates a .skillmatrix.yaml file pointing at a catalog directory. With
--sample, a small example catalog is written to that directory as well.

Example:
  skillmatrix init
  skillmatrix init --catalog-dir ./catalog --sample`,
	RunE: initProject,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("catalog-dir", config.DefaultCatalogPath, "Catalog directory")
	initCmd.Flags().Bool("sample", false, "Install the sample catalog into the catalog directory")
	initCmd.Flags().Bool("expert-mode", false, "Enable expert mode by default")
	initCmd.Flags().Bool("force", false, "Overwrite existing config and sample files")
}

type projectConfig struct {
	Catalog struct {
		Path string `yaml:"path"`
	} `yaml:"catalog"`
	Selection struct {
		ExpertMode bool     `yaml:"expert_mode"`
		Skills     []string `yaml:"skills"`
	} `yaml:"selection"`
	Output struct {
		Format string `yaml:"format"`
	} `yaml:"output"`
}

func initProject(cmd *cobra.Command, args []string) error {
	configPath := filepath.Join(".", configFileName)

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
	}

	pc := projectConfig{}
	pc.Catalog.Path, _ = cmd.Flags().GetString("catalog-dir")
	pc.Selection.ExpertMode, _ = cmd.Flags().GetBool("expert-mode")
	pc.Selection.Skills = []string{}
	pc.Output.Format = config.FormatText

	if err := writeProjectConfig(configPath, pc); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", configPath)

	sample, _ := cmd.Flags().GetBool("sample")
	if sample {
		if err := catalog.InstallSample(pc.Catalog.Path, force); err != nil {
			return fmt.Errorf("failed to install sample catalog: %w", err)
		}
		logger.Debug("Installed sample catalog", zap.String("dir", pc.Catalog.Path))
		fmt.Fprintf(out, "Installed sample catalog in %s\n", pc.Catalog.Path)
	}

	fmt.Fprintln(out, "\nNext steps:")
	if !sample {
		fmt.Fprintf(out, "  1. Put skills-matrix.yaml and skills/ under %s\n", pc.Catalog.Path)
	} else {
		fmt.Fprintln(out, "  1. Browse the catalog with 'skillmatrix categories'")
	}
	fmt.Fprintln(out, "  2. Run 'skillmatrix select' to build a selection")

	return nil
}

func writeProjectConfig(path string, pc projectConfig) error {
	data, err := yaml.Marshal(pc)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := "# skillmatrix configuration\n\n"

	if err := os.WriteFile(path, append([]byte(header), data...), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
