package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/bobiko/huawei-router-api/internal/app"
	"github.com/bobiko/huawei-router-api/internal/config"
	"github.com/bobiko/huawei-router-api/internal/constants"
)

const testBaseConfigContent = `
router_url: "http://192.168.1.1"
log_level: "info"
request_timeout: "10s"
user_agent: "ConfigAgent/1.0"
max_log_length: "64KiB"
`

func newTestFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("url", "u", "", "router URL")
	flags.StringP("log-level", "l", "", "log level")
	flags.StringP("timeout", "t", "", "request timeout")

	return flags
}

func loadTestConfig(t *testing.T) *config.Config {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "test-config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(testBaseConfigContent), constants.DefaultFilePermissions))

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)

	return cfg
}

// TestFlagOverrides tests that command-line flags override configuration file values.
func TestFlagOverrides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		flags          map[string]string
		expectedConfig func(*testing.T, *config.Config)
	}{
		{
			name:  "no flags - use config values",
			flags: map[string]string{},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "http://192.168.1.1", cfg.Origin())
				assert.Equal(t, zapcore.InfoLevel, cfg.ParsedLogLevel)
				assert.Equal(t, 10*time.Second, cfg.ParsedRequestTimeout)
			},
		},
		{
			name:  "url flag only",
			flags: map[string]string{"url": "https://router.lan:8443/html/home.html"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "https://router.lan:8443", cfg.Origin())
				assert.Equal(t, zapcore.InfoLevel, cfg.ParsedLogLevel)
				assert.Equal(t, 10*time.Second, cfg.ParsedRequestTimeout)
			},
		},
		{
			name:  "log level flag only",
			flags: map[string]string{"log-level": "debug"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "http://192.168.1.1", cfg.Origin())
				assert.Equal(t, zapcore.DebugLevel, cfg.ParsedLogLevel)
			},
		},
		{
			name:  "all flags",
			flags: map[string]string{"url": "http://10.0.0.1", "log-level": "error", "timeout": "2m"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "http://10.0.0.1", cfg.Origin())
				assert.Equal(t, zapcore.ErrorLevel, cfg.ParsedLogLevel)
				assert.Equal(t, 2*time.Minute, cfg.ParsedRequestTimeout)
				assert.Equal(t, "ConfigAgent/1.0", cfg.UserAgent)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := loadTestConfig(t)
			flags := newTestFlagSet()

			for name, value := range tt.flags {
				require.NoError(t, flags.Set(name, value))
			}

			require.NoError(t, bindFlagsToConfig(flags, cfg))
			tt.expectedConfig(t, cfg)
		})
	}
}

// TestFlagOverrides_InvalidValues tests that invalid flag values are rejected.
func TestFlagOverrides_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		flagName      string
		flagValue     string
		expectedError error
	}{
		{name: "url without scheme", flagName: "url", flagValue: "192.168.8.1", expectedError: config.ErrInvalidRouterURL},
		{name: "empty url", flagName: "url", flagValue: "", expectedError: config.ErrEmptyRouterURL},
		{name: "unknown log level", flagName: "log-level", flagValue: "loud", expectedError: config.ErrUnknownLogLevel},
		{name: "negative timeout", flagName: "timeout", flagValue: "-1s", expectedError: config.ErrInvalidRequestTimeout},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := loadTestConfig(t)
			flags := newTestFlagSet()
			require.NoError(t, flags.Set(tt.flagName, tt.flagValue))

			err := bindFlagsToConfig(flags, cfg)
			require.ErrorIs(t, err, tt.expectedError)
		})
	}
}

// TestBindFlagsToConfig_EmptyFlagSet tests binding with a flag set that defines no flags.
func TestBindFlagsToConfig_EmptyFlagSet(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	require.NoError(t, bindFlagsToConfig(pflag.NewFlagSet("empty", pflag.ContinueOnError), cfg))
	assert.Equal(t, config.DefaultRouterURL, cfg.Origin())
}

// TestXMLOptionsFromFlags tests conversion of xml command flags.
func TestXMLOptionsFromFlags(t *testing.T) {
	t.Parallel()

	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "xml"}
		cmd.Flags().StringP("method", "X", "", "")
		cmd.Flags().StringP("data", "d", "", "")
		cmd.Flags().StringArrayP("header", "H", nil, "")
		cmd.Flags().Bool("token", false, "")
		cmd.Flags().Bool("headers", false, "")

		return cmd
	}

	cmd := newCmd()
	require.NoError(t, cmd.Flags().Parse([]string{
		"-X", "POST",
		"-d", "<request/>",
		"-H", "Content-Type: text/xml",
		"-H", "X-Requested-With: XMLHttpRequest",
		"--token",
	}))

	opts, err := xmlOptionsFromFlags(cmd, "api/sms/sms-list")
	require.NoError(t, err)
	assert.Equal(t, &app.XMLCommandOptions{
		Path:   "api/sms/sms-list",
		Method: "POST",
		Data:   "<request/>",
		Headers: map[string]string{
			"Content-Type":     "text/xml",
			"X-Requested-With": "XMLHttpRequest",
		},
		WithToken: true,
	}, opts)

	cmd = newCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"-H", "broken"}))

	_, err = xmlOptionsFromFlags(cmd, "api/x")
	require.ErrorIs(t, err, app.ErrInvalidHeader)
}
