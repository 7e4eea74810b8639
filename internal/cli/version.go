package cli

import (
	"fmt"

	"github.com/andywolf/skillmatrix/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information including commit hash and build date.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		out := cmd.OutOrStdout()

		switch {
		case yamlOutput():
			return writeYAML(out, info)
		case viper.GetBool("verbose"):
			fmt.Fprintln(out, info.Long())
		default:
			fmt.Fprintln(out, info.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
