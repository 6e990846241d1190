package app

import (
	"context"

	"github.com/bobiko/huawei-router-api/internal/config"
	"github.com/bobiko/huawei-router-api/internal/logger"
)

// ExecuteConfigInitCommand writes a configuration file holding the default values.
func ExecuteConfigInitCommand(ctx context.Context, path string) {
	if path == "" {
		path = config.DefaultConfigFilename
	}

	if err := config.WriteDefaultConfig(path); err != nil {
		logger.Fatalf(ctx, "Failed to create configuration: %v", err)
	}

	logger.Infof(ctx, "Configuration written to %s", path)
}
