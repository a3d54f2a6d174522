package api

import "github.com/phrazzld/flashcard-genie/internal/domain"

// GenerateFlashcardsRequest is the payload of POST /api/v1/flashcards/generate.
type GenerateFlashcardsRequest struct {
	Topic string `json:"topic" validate:"notblank"`
}

// GenerateFlashcardsResponse is the successful response of POST /api/v1/flashcards/generate.
type GenerateFlashcardsResponse struct {
	Flashcards []domain.Flashcard `json:"flashcards"`
}

// HealthResponse is the response of GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
