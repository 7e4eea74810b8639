package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Output formats accepted by output.format.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// DefaultCatalogPath is used when catalog.path is unset.
const DefaultCatalogPath = "./catalog"

// Config represents the full skillmatrix configuration
type Config struct {
	Verbose   bool            `mapstructure:"verbose"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Selection SelectionConfig `mapstructure:"selection"`
	Output    OutputConfig    `mapstructure:"output"`
}

// CatalogConfig locates the catalog on disk
type CatalogConfig struct {
	Path       string `mapstructure:"path"`
	MatrixFile string `mapstructure:"matrix_file"` // relative to Path
	StacksFile string `mapstructure:"stacks_file"` // relative to Path
	SkillsDir  string `mapstructure:"skills_dir"`  // relative to Path

	// VersionConstraint is a semver constraint the matrix version must meet.
	VersionConstraint string `mapstructure:"version_constraint"`
}

// SelectionConfig holds the persisted selection and mode
type SelectionConfig struct {
	ExpertMode bool     `mapstructure:"expert_mode"`
	Skills     []string `mapstructure:"skills"`
}

// OutputConfig controls how commands print results
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom unmarshals configuration from an explicit viper instance.
func LoadFrom(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults sets default values for unset fields
func applyDefaults(cfg *Config) {
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = DefaultCatalogPath
	}

	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatText
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog path is required")
	}

	validFormats := map[string]bool{FormatText: true, FormatYAML: true}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output format: %s (must be text or yaml)", c.Output.Format)
	}

	for _, s := range c.Selection.Skills {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("selection.skills contains an empty entry")
		}
	}

	return nil
}
