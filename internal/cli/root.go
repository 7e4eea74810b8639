package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/andywolf/skillmatrix/internal/config"
	"github.com/andywolf/skillmatrix/internal/logging"
	"github.com/andywolf/skillmatrix/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile   string
	configErr error
	cfg       *config.Config
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "skillmatrix",
	Short: "skillmatrix - Explore and validate skill selections against a relationship matrix",
	Long: `skillmatrix loads a catalog of skills and a relationship matrix
(conflicts, recommendations, requirements, alternatives) and answers
questions about a selection: which skills are still selectable, which
would break if one is removed, and whether the whole set is valid.

Example:
  skillmatrix check --select react,zustand,tailwind
  skillmatrix select --stack react-fullstack`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}

		var err error
		logger, err = logging.New(viper.GetBool("verbose"))
		if err != nil {
			return err
		}
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("Using config file", zap.String("path", used))
		}

		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return cfg.Validate()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = version.Short()
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is .skillmatrix.yaml)")
	flags.Bool("verbose", false, "enable verbose output")
	flags.String("catalog", "", "catalog directory (default ./catalog)")
	flags.StringP("output", "o", "", "output format (text or yaml)")
	flags.Bool("expert", false, "skip conflict and requirement enforcement")

	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("catalog.path", flags.Lookup("catalog"))
	_ = viper.BindPFlag("output.format", flags.Lookup("output"))
	_ = viper.BindPFlag("selection.expert_mode", flags.Lookup("expert"))
}

func initConfig() {
	dir := ""
	if cfgFile == "" {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error getting working directory:", err)
			os.Exit(1)
		}
		dir = cwd
	}
	configErr = readConfig(viper.GetViper(), cfgFile, dir)
}

// readConfig points v at file, or at .skillmatrix.yaml in dir when file is
// empty, and reads it. Only a missing default file is tolerated.
func readConfig(v *viper.Viper, file, dir string) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(dir)
		v.SetConfigType("yaml")
		v.SetConfigName(".skillmatrix")
	}

	v.SetEnvPrefix("SKILLMATRIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}
