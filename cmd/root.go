package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bobiko/huawei-router-api/internal/config"
	"github.com/bobiko/huawei-router-api/internal/logger"
	"github.com/bobiko/huawei-router-api/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "huawei-router",
		Short: "Talk to the web admin interface of a Huawei LTE router.",
		Long: `huawei-router is a CLI client for the web admin interface of Huawei LTE routers.

It can:
- Read the verification (csrf) tokens embedded in the router home page
- Call any XML API endpoint and print the parsed response as YAML

The router address, timeouts and logging are read from a YAML configuration file
and can be overridden with flags.`,
		Version:          version.Short(),
		SilenceUsage:     true,
		PersistentPreRun: initConfig,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmdFlags := rootCmd.PersistentFlags()

	rootCmdFlags.StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmdFlags.StringP(
		"url",
		"u",
		"",
		"router URL, for example: http://192.168.8.1 (only the origin is used).")

	rootCmdFlags.StringP(
		"log-level",
		"l",
		"",
		"log level: debug, info, warn, error.")

	rootCmdFlags.StringP(
		"timeout",
		"t",
		"",
		"timeout of a single HTTP request, for example: 10s, 1m.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("url"); flag != nil && flag.Changed {
		cfg.RouterURL, _ = flags.GetString("url")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if flag := flags.Lookup("timeout"); flag != nil && flag.Changed {
		cfg.RequestTimeout, _ = flags.GetString("timeout")
	}

	return config.ValidateConfig(cfg)
}
