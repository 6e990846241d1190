package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bobiko/huawei-router-api/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Print the verification tokens of the router home page",
	Long: `Fetches /html/home.html from the router and prints the content of every
<meta name="csrf_token"> element, one per line, in document order.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		app.ExecuteTokensCommand(cmd.Context(), appConfig, cmd.OutOrStdout())
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(tokensCmd)
}
