package generation

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/phrazzld/flashcard-genie/internal/domain"
	"github.com/phrazzld/flashcard-genie/internal/redact"
)

// Outcome labels reported to an Observer.
const (
	OutcomeSuccess    = "success"
	OutcomeUnexpected = "unexpected"
)

// Observer receives the outcome of every GenerateFlashcards call.
// outcome is OutcomeSuccess, OutcomeUnexpected or the string form of a Category.
type Observer interface {
	ObserveGeneration(outcome string, flashcards int, discarded int)
}

// ServiceOption customizes a Service.
type ServiceOption func(*Service)

// WithObserver attaches an Observer to the service.
func WithObserver(observer Observer) ServiceOption {
	return func(s *Service) {
		s.observer = observer
	}
}

// WithParams overrides the sampling parameters sent to the generator.
func WithParams(params Params) ServiceOption {
	return func(s *Service) {
		s.params = params
	}
}

// Service generates flashcards for a topic: it renders the prompt, makes one
// call to the Generator and validates the raw output. It holds no mutable
// state and is safe for concurrent use.
type Service struct {
	generator Generator
	prompts   *PromptBuilder
	logger    *slog.Logger
	observer  Observer
	params    Params
}

// NewService creates a Service with the provided dependencies.
func NewService(
	generator Generator,
	prompts *PromptBuilder,
	logger *slog.Logger,
	opts ...ServiceOption,
) (*Service, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if prompts == nil {
		return nil, errors.New("prompt builder cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	s := &Service{
		generator: generator,
		prompts:   prompts,
		logger:    logger.With(slog.String("component", "generation_service")),
		params:    DefaultParams(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// GenerateFlashcards returns the validated flashcards for topic.
//
// An empty or whitespace-only topic is rejected before the generator is called.
// Every other failure is either an *Error (generation, parse or validation) or an
// unexpected error.
func (s *Service) GenerateFlashcards(ctx context.Context, topic string) ([]domain.Flashcard, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		s.logger.WarnContext(ctx, "attempted to generate flashcards with an empty topic")
		err := NewInputError(ErrEmptyTopic)
		s.observe(err, 0, 0)
		return nil, err
	}

	s.logger.InfoContext(ctx, "generating flashcards",
		"topic_preview", preview(topic, 50),
		"topic_length", len(topic))

	prompt, err := s.prompts.Build(topic)
	if err != nil {
		s.observe(err, 0, 0)
		return nil, err
	}

	raw, err := s.generator.Generate(ctx, prompt, s.params)
	if err != nil {
		if _, ok := AsError(err); !ok {
			err = NewGenerationError(ErrUpstreamUnavailable, err)
		}
		s.logger.ErrorContext(ctx, "language model call failed", "error", redact.Error(err))
		s.observe(err, 0, 0)
		return nil, err
	}

	result, err := ParseFlashcards(ctx, s.logger, raw)
	if err != nil {
		s.observe(err, 0, 0)
		return nil, err
	}

	s.logger.InfoContext(ctx, "successfully generated flashcards",
		"flashcard_count", len(result.Flashcards),
		"discarded_count", result.Discarded)
	s.observe(nil, len(result.Flashcards), result.Discarded)

	return result.Flashcards, nil
}

func (s *Service) observe(err error, flashcards, discarded int) {
	if s.observer == nil {
		return
	}

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeUnexpected
		if category := CategoryOf(err); category != "" {
			outcome = string(category)
		}
	}
	s.observer.ObserveGeneration(outcome, flashcards, discarded)
}

// preview returns at most n runes of s for logging.
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
