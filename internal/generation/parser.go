package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/phrazzld/flashcard-genie/internal/domain"
)

// maxExcerptLength bounds how much of the model output is echoed back in parse errors.
const maxExcerptLength = 200

// fencedJSONRegex matches a single markdown code fence around a JSON array or object.
// The body is greedy and may span lines, so nested brackets stay inside the capture.
var fencedJSONRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(\\[.*\\]|\\{.*\\})\\s*```")

// ParseResult is the outcome of a successful parse.
type ParseResult struct {
	// Flashcards holds the valid items in the order the model returned them.
	Flashcards []domain.Flashcard

	// Discarded is the number of elements dropped because they had the wrong shape.
	Discarded int
}

// ParseFlashcards converts raw model output into validated flashcards.
//
// The text is trimmed and, if it contains a fenced JSON block, the block body is
// used; otherwise the whole text is decoded. The decoded value must be an array.
// Elements that are not objects with string "term" and "definition" fields are
// skipped and logged. An empty result is always an error.
func ParseFlashcards(ctx context.Context, logger *slog.Logger, raw string) (*ParseResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	candidate := extractJSON(raw)

	var decoded any
	if err := json.Unmarshal([]byte(candidate), &decoded); err != nil {
		logger.ErrorContext(ctx, "failed to parse JSON from model response",
			"error", err,
			"response_length", len(candidate))
		return nil, NewParseError(ErrInvalidJSON,
			fmt.Sprintf("%v. Text: %s", err, excerpt(candidate)))
	}

	items, ok := decoded.([]any)
	if !ok {
		logger.ErrorContext(ctx, "parsed model response is not a list",
			"json_type", jsonTypeName(decoded))
		return nil, NewParseError(ErrNotAList, "got "+jsonTypeName(decoded))
	}

	result := &ParseResult{
		Flashcards: make([]domain.Flashcard, 0, len(items)),
	}
	for i, item := range items {
		card, reason := toFlashcard(item)
		if reason != "" {
			result.Discarded++
			logger.WarnContext(ctx, "skipping invalid flashcard item",
				"index", i,
				"reason", reason,
				"json_type", jsonTypeName(item))
			continue
		}
		result.Flashcards = append(result.Flashcards, card)
	}

	if len(result.Flashcards) == 0 {
		if len(items) > 0 {
			logger.ErrorContext(ctx, "no valid flashcards after validation",
				"item_count", len(items))
			return nil, NewValidationError(ErrNoValidItems)
		}
		logger.WarnContext(ctx, "model returned an empty flashcard list")
		return nil, NewValidationError(ErrNoFlashcards)
	}

	logger.DebugContext(ctx, "parsed model response",
		"flashcard_count", len(result.Flashcards),
		"discarded_count", result.Discarded)

	return result, nil
}

// extractJSON returns the body of the first fenced JSON block in raw, or the
// trimmed text when there is no fence.
func extractJSON(raw string) string {
	text := strings.TrimSpace(raw)
	if match := fencedJSONRegex.FindStringSubmatch(text); match != nil {
		return match[1]
	}
	return text
}

// toFlashcard validates the shape of one decoded element. It returns a non-empty
// reason when the element must be skipped.
func toFlashcard(item any) (domain.Flashcard, string) {
	obj, ok := item.(map[string]any)
	if !ok {
		return domain.Flashcard{}, "not an object"
	}

	termValue, hasTerm := obj["term"]
	definitionValue, hasDefinition := obj["definition"]
	switch {
	case !hasTerm && !hasDefinition:
		return domain.Flashcard{}, "missing term and definition"
	case !hasTerm:
		return domain.Flashcard{}, "missing term"
	case !hasDefinition:
		return domain.Flashcard{}, "missing definition"
	}

	term, ok := termValue.(string)
	if !ok {
		return domain.Flashcard{}, "term is not a string"
	}
	definition, ok := definitionValue.(string)
	if !ok {
		return domain.Flashcard{}, "definition is not a string"
	}

	return domain.NewFlashcard(term, definition), ""
}

// excerpt shortens text to maxExcerptLength runes for error messages.
func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= maxExcerptLength {
		return text
	}
	return string(runes[:maxExcerptLength]) + "..."
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
