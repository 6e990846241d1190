package app

import (
	"context"
	"fmt"
	"io"

	"github.com/bobiko/huawei-router-api/internal/client/router"
	"github.com/bobiko/huawei-router-api/internal/config"
	"github.com/bobiko/huawei-router-api/internal/logger"
)

// ExecuteTokensCommand prints the verification tokens of the configured router.
func ExecuteTokensCommand(ctx context.Context, cfg *config.Config, w io.Writer) {
	client, err := router.NewClient(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize router client: %v", err)
	}

	if err = RunTokens(ctx, client, w); err != nil {
		logger.Fatalf(ctx, "Failed to get verification tokens: %v", err)
	}
}

// RunTokens writes one token per line. A page without tokens is reported at warn level.
func RunTokens(ctx context.Context, client router.Client, w io.Writer) error {
	tokens, err := client.GetTokensFromPage(ctx)
	if err != nil {
		return err
	}

	if len(tokens) == 0 {
		logger.Warnf(ctx, "No verification tokens found on %s", client.GetOrigin())

		return nil
	}

	for _, token := range tokens {
		if _, err = fmt.Fprintln(w, token); err != nil {
			return fmt.Errorf("failed to write token: %w", err)
		}
	}

	return nil
}
