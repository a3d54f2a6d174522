package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flashcard-genie/internal/config"
	"github.com/phrazzld/flashcard-genie/internal/generation"
	"github.com/phrazzld/flashcard-genie/internal/redact"
	"google.golang.org/genai"
)

// GeminiGenerator implements generation.Generator using the Gemini API.
// It is safe for concurrent use.
type GeminiGenerator struct {
	logger *slog.Logger
	models Models
	model  string
}

// NewGeminiGenerator creates a GeminiGenerator backed by a real genai client.
// The API key and model name are required.
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %s",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	return NewGeminiGeneratorWithModels(logger, &modelsWrapper{models: client.Models}, cfg.ModelName)
}

// NewGeminiGeneratorWithModels creates a GeminiGenerator over an existing Models implementation.
func NewGeminiGeneratorWithModels(logger *slog.Logger, models Models, model string) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if models == nil {
		return nil, errors.New("models cannot be nil")
	}
	if model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	return &GeminiGenerator{
		logger: logger.With(slog.String("component", "gemini_generator"), slog.String("model", model)),
		models: models,
		model:  model,
	}, nil
}

// Generate sends prompt to the model and returns the text of the first part
// of the first candidate.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, params generation.Params) (string, error) {
	g.logger.DebugContext(ctx, "calling Gemini API",
		"prompt_length", len(prompt),
		"candidate_count", params.CandidateCount,
		"temperature", params.Temperature)

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), generateConfig(params))
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed", "error", redact.Error(err))
		return "", generation.NewGenerationError(generation.ErrUpstreamUnavailable, err)
	}

	text, err := firstText(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "Gemini API returned an unusable response", "error", err)
		return "", err
	}

	g.logger.DebugContext(ctx, "Gemini API call successful", "response_length", len(text))
	return text, nil
}

func generateConfig(params generation.Params) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		CandidateCount: params.CandidateCount,
		Temperature:    genai.Ptr(params.Temperature),
	}
}

// firstText extracts the raw text of the first candidate's first part.
func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", generation.NewGenerationError(generation.ErrEmptyResponse, errors.New("nil response"))
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", generation.NewGenerationError(generation.ErrEmptyResponse, errors.New("no candidates"))
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", generation.NewGenerationError(generation.ErrContentBlocked, nil)
	}
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 || candidate.Content.Parts[0] == nil {
		return "", generation.NewGenerationError(generation.ErrEmptyResponse, errors.New("no content parts"))
	}

	return candidate.Content.Parts[0].Text, nil
}
