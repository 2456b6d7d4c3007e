// Package main implements the entry point for the RankPilot API server,
// which serves AI-backed SEO tools with automatic fallback between
// generation providers.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rizz-Vii/studio-sub011/internal/config"
	"github.com/Rizz-Vii/studio-sub011/internal/platform/logger"
)

// main loads configuration, sets up logging, wires the application and
// serves HTTP until SIGINT or SIGTERM.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("server error: %v", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := initializeApp()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	app, err := newApplication(ctx, cfg, slog.Default())
	if err != nil {
		return err
	}

	return app.Run(ctx)
}

// initializeApp loads configuration and sets up structured logging.
// Returns the loaded config and any initialization error.
func initializeApp() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"request_timeout_seconds", cfg.Server.RequestTimeoutSeconds,
		"primary_model", cfg.LLM.PrimaryModel,
		"fallback_enabled", cfg.LLM.FallbackEnabled(),
		"metrics_enabled", cfg.Metrics.Enabled)

	return cfg, nil
}
