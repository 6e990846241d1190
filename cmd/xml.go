package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bobiko/huawei-router-api/internal/app"
	"github.com/bobiko/huawei-router-api/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var xmlCmd = &cobra.Command{
	Use:   "xml {api-path}",
	Short: "Call an XML API endpoint and print the response as YAML",
	Long: `Sends a request to an XML API endpoint of the router, for example
api/monitoring/status or api/device/information, and prints the parsed
response document as YAML.

A router error document such as <error><code>125002</code></error> is printed
and makes the command exit with a non-zero status.

Examples:
  huawei-router xml api/monitoring/status
  huawei-router xml api/sms/sms-count --token
  huawei-router xml api/sms/sms-list -X POST --token -d '<request><PageIndex>1</PageIndex><ReadCount>20</ReadCount><BoxType>1</BoxType><SortType>0</SortType><Ascending>0</Ascending><UnreadPreferred>0</UnreadPreferred></request>'`, //nolint:lll
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := xmlOptionsFromFlags(cmd, args[0])
		if err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		app.ExecuteXMLCommand(cmd.Context(), appConfig, opts, cmd.OutOrStdout())
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	xmlCmdFlags := xmlCmd.Flags()

	xmlCmdFlags.StringP("method", "X", "", "HTTP method (default GET).")
	xmlCmdFlags.StringP("data", "d", "", "raw request body, usually an XML <request> document.")
	xmlCmdFlags.StringArrayP("header", "H", nil, "extra request header 'Name: value', can be repeated.")
	xmlCmdFlags.Bool("token", false, "send a verification token from the home page in __RequestVerificationToken.")
	xmlCmdFlags.Bool("headers", false, "print the response headers.")

	rootCmd.AddCommand(xmlCmd)
}

func xmlOptionsFromFlags(cmd *cobra.Command, path string) (*app.XMLCommandOptions, error) {
	flags := cmd.Flags()

	method, _ := flags.GetString("method")
	data, _ := flags.GetString("data")
	rawHeaders, _ := flags.GetStringArray("header")
	withToken, _ := flags.GetBool("token")
	showHeaders, _ := flags.GetBool("headers")

	headers, err := app.ParseHeaders(rawHeaders)
	if err != nil {
		return nil, err
	}

	return &app.XMLCommandOptions{
		Path:        path,
		Method:      method,
		Data:        data,
		Headers:     headers,
		WithToken:   withToken,
		ShowHeaders: showHeaders,
	}, nil
}
