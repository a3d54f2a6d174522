package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flashcard-genie/internal/api"
	"github.com/phrazzld/flashcard-genie/internal/config"
	"github.com/phrazzld/flashcard-genie/internal/generation"
	"github.com/phrazzld/flashcard-genie/internal/platform/gemini"
	"github.com/phrazzld/flashcard-genie/internal/platform/metrics"
)

// application holds the shared dependencies of the server.
// Everything in it is read-only after construction.
type application struct {
	config *config.Config
	logger *slog.Logger

	metrics          *metrics.Metrics
	flashcardService api.FlashcardService
}

// newApplication creates the application with a Gemini-backed generator.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	generator, err := gemini.NewGeminiGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized", "model", cfg.LLM.ModelName)

	return newApplicationWithGenerator(cfg, logger, generator)
}

// newApplicationWithGenerator wires the application around an existing generator.
func newApplicationWithGenerator(
	cfg *config.Config,
	logger *slog.Logger,
	generator generation.Generator,
) (*application, error) {
	prompts, err := generation.NewPromptBuilder(cfg.LLM.PromptTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}

	m := metrics.New()

	service, err := generation.NewService(generator, prompts, logger, generation.WithObserver(m))
	if err != nil {
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           logger,
		metrics:          m,
		flashcardService: service,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
