package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Rizz-Vii/studio-sub011/internal/config"
	"github.com/Rizz-Vii/studio-sub011/internal/generation"
	"github.com/Rizz-Vii/studio-sub011/internal/platform/gemini"
	"github.com/Rizz-Vii/studio-sub011/internal/platform/metrics"
	"github.com/Rizz-Vii/studio-sub011/internal/platform/openai"
	"github.com/Rizz-Vii/studio-sub011/internal/seo"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// metrics is nil when metrics are disabled
	metrics *metrics.GenerationMetrics

	generator  generation.Generator
	seoService *seo.Service
}

// newApplication creates the provider adapters from configuration and wires
// them into the application.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	primary, err := gemini.NewGenerator(ctx, logger.With("component", "gemini_generator"), cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize primary generator: %w", err)
	}
	logger.Info("Primary AI provider initialized", "provider", primary.Name(), "model", cfg.LLM.PrimaryModel)

	var fallback generation.Provider
	if cfg.LLM.FallbackEnabled() {
		openaiGen, err := openai.NewGenerator(logger.With("component", "openai_generator"), cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize fallback generator: %w", err)
		}
		fallback = openaiGen
		logger.Info("Fallback AI provider initialized", "provider", openaiGen.Name(), "model", cfg.LLM.FallbackModel)
	} else {
		logger.Warn("No fallback AI provider configured; primary outages will fail requests")
	}

	return newApplicationWithProviders(cfg, logger, primary, fallback)
}

// newApplicationWithProviders wires the orchestrator, metrics and SEO service
// around already constructed providers. fallback may be nil.
func newApplicationWithProviders(
	cfg *config.Config,
	logger *slog.Logger,
	primary generation.Provider,
	fallback generation.Provider,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var opts []generation.Option
	if cfg.Metrics.Enabled {
		app.metrics = metrics.NewGenerationMetrics()
		opts = append(opts, generation.WithRecorder(app.metrics))
	}

	orchestrator, err := generation.NewOrchestrator(
		primary,
		fallback,
		logger.With("component", "generation_orchestrator"),
		opts...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation orchestrator: %w", err)
	}
	app.generator = orchestrator

	app.seoService, err = seo.NewService(app.generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create SEO service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and blocks until ctx is canceled or the
// server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
