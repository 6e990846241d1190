package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/bobiko/huawei-router-api/internal/constants"
	"github.com/bobiko/huawei-router-api/internal/logger"
	"github.com/bobiko/huawei-router-api/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// RouterURL is any URL of the router's web interface; only its origin is used.
	RouterURL string `mapstructure:"router_url" yaml:"router_url"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// RequestTimeout bounds a single HTTP round trip (e.g., "30s").
	RequestTimeout string `mapstructure:"request_timeout" yaml:"request_timeout"`
	// UserAgent is sent with every request that does not set one explicitly.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
	// MaxLogLength caps request/response dumps written at debug level (e.g., "1 MB", "64KiB").
	MaxLogLength string `mapstructure:"max_log_length" yaml:"max_log_length"`
	// ParsedRouterURL is the parsed RouterURL.
	ParsedRouterURL *url.URL `yaml:"-"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `yaml:"-"`
	// ParsedRequestTimeout is the parsed request timeout.
	ParsedRequestTimeout time.Duration `yaml:"-"`
	// ParsedMaxLogLength is the parsed dump size limit in bytes.
	ParsedMaxLogLength uint64 `yaml:"-"`
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".huawei-router.yaml"

	// DefaultRouterURL is the address most Huawei LTE routers ship with.
	DefaultRouterURL = "http://192.168.8.1"

	// DefaultLogLevel is the default logging level.
	DefaultLogLevel = "info"

	// DefaultRequestTimeout is the default timeout of a single round trip.
	DefaultRequestTimeout = "30s"

	// DefaultUserAgent mimics a common browser; some firmware refuses unknown clients.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36" //nolint: lll

	// DefaultMaxLogLength is the default limit for debug dumps.
	DefaultMaxLogLength = "1 MB"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyRouterURL indicates that the router URL is missing.
	ErrEmptyRouterURL = errors.New("router_url cannot be empty")
	// ErrInvalidRouterURL indicates that the router URL has no usable origin.
	ErrInvalidRouterURL = errors.New("router_url must be an absolute http or https URL")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is not positive.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrInvalidMaxLogLength indicates that the dump size limit is not positive.
	ErrInvalidMaxLogLength = errors.New("max_log_length must be positive")
	// ErrConfigExists indicates that WriteDefaultConfig would overwrite a file.
	ErrConfigExists = errors.New("configuration file already exists")
)

// Default returns a configuration populated with default values, not yet validated.
func Default() *Config {
	return &Config{
		RouterURL:      DefaultRouterURL,
		LogLevel:       DefaultLogLevel,
		RequestTimeout: DefaultRequestTimeout,
		UserAgent:      DefaultUserAgent,
		MaxLogLength:   DefaultMaxLogLength,
	}
}

// LoadConfig loads configuration settings from a YAML file.
// Keys missing from the file keep their default values.
// A missing default file is not an error; a missing explicitly named file is.
func LoadConfig(configFilename string) (*Config, error) {
	explicit := configFilename != ""
	if !explicit {
		configFilename = DefaultConfigFilename
	}

	v := viper.New()
	v.SetConfigFile(configFilename)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		exists, statErr := utils.IsFileExist(configFilename)
		if explicit || statErr != nil || exists {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}

		logger.Debugf(context.Background(), "Config file %s not found, using defaults", configFilename)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("router_url", defaults.RouterURL)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("request_timeout", defaults.RequestTimeout)
	v.SetDefault("user_agent", defaults.UserAgent)
	v.SetDefault("max_log_length", defaults.MaxLogLength)
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	routerURL := strings.TrimSpace(cfg.RouterURL)
	if routerURL == "" {
		return ErrEmptyRouterURL
	}

	parsedURL, err := url.Parse(routerURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRouterURL, err)
	}

	if (parsedURL.Scheme != "http" && parsedURL.Scheme != "https") || parsedURL.Host == "" {
		return fmt.Errorf("%w: '%s'", ErrInvalidRouterURL, cfg.RouterURL)
	}

	cfg.ParsedRouterURL = parsedURL

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedRequestTimeout, err = time.ParseDuration(strings.TrimSpace(cfg.RequestTimeout))
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	cfg.ParsedMaxLogLength, err = humanize.ParseBytes(strings.TrimSpace(cfg.MaxLogLength))
	if err != nil {
		return fmt.Errorf("failed to parse max log length: %w", err)
	}

	if cfg.ParsedMaxLogLength == 0 {
		return ErrInvalidMaxLogLength
	}

	return nil
}

// Origin returns the scheme, host and port of the router URL, e.g. "http://192.168.8.1".
// It must be called on a validated configuration.
func (c *Config) Origin() string {
	origin := url.URL{
		Scheme: c.ParsedRouterURL.Scheme,
		Host:   c.ParsedRouterURL.Host,
	}

	return origin.String()
}

// WriteDefaultConfig writes a configuration file holding the default values.
// It refuses to overwrite an existing file.
func WriteDefaultConfig(path string) error {
	if path == "" {
		path = DefaultConfigFilename
	}

	exists, err := utils.IsFileExist(path)
	if err != nil {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	if exists {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	content, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(path, content, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
