package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/couchcryptid/wxterm/internal/adapter/openweather"
	"github.com/couchcryptid/wxterm/internal/config"
	"github.com/couchcryptid/wxterm/internal/observability"
	"github.com/couchcryptid/wxterm/internal/render"
	"github.com/couchcryptid/wxterm/internal/shell"
)

func main() {
	// Optional .env for local runs; real environment variables win.
	_ = godotenv.Load()

	renderer := render.New(os.Stdout)
	renderer.Welcome()

	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrAPIKeyMissing) {
			renderer.ConfigurationError()
		} else {
			slog.Error("failed to load config", "error", err)
		}
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	client := openweather.NewClient(cfg, logger, metrics)

	sh := shell.New(client, renderer, metrics, logger, os.Stdin)
	if err := sh.Run(context.Background()); err != nil {
		logger.Error("input error", "error", err)
		os.Exit(1)
	}
}
