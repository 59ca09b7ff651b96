// Command server runs the gophnotes gRPC API.
package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/gophnotes/internal/logging"
	"github.com/dmitrijs2005/gophnotes/internal/server"
	"github.com/dmitrijs2005/gophnotes/internal/server/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.NewForMode(os.Stderr, false).Error(context.Background(), "server failed to start", "error", err)
		os.Exit(2)
	}
	logger := logging.NewForMode(os.Stdout, cfg.IsProduction()).With("service", "gophnotes")

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error(context.Background(), "server failed to start", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	app.Run(ctx)
	return nil
}
