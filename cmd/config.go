package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bobiko/huawei-router-api/internal/app"
	"github.com/bobiko/huawei-router-api/internal/config"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	configInitCmd = &cobra.Command{
		Use:   "init [path]",
		Short: "Write a configuration file with default values",
		Long: `Writes the default configuration to the given path, or to ` + config.DefaultConfigFilename + `
in the current directory. An existing file is never overwritten.`,
		Args: cobra.MaximumNArgs(1),
		// The configuration being created must not be required to exist.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			var path string
			if len(args) > 0 {
				path = args[0]
			}

			app.ExecuteConfigInitCommand(cmd.Context(), path)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
