package api

import (
	"context"
	"net/http"

	"github.com/phrazzld/flashcard-genie/internal/api/shared"
	"github.com/phrazzld/flashcard-genie/internal/domain"
	"github.com/phrazzld/flashcard-genie/internal/generation"
	"github.com/phrazzld/flashcard-genie/internal/platform/logger"
)

// FlashcardService generates flashcards for a topic.
type FlashcardService interface {
	GenerateFlashcards(ctx context.Context, topic string) ([]domain.Flashcard, error)
}

// FlashcardHandler handles flashcard generation requests.
type FlashcardHandler struct {
	service FlashcardService
}

// NewFlashcardHandler creates a new FlashcardHandler.
func NewFlashcardHandler(service FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{service: service}
}

// GenerateFlashcards handles POST /api/v1/flashcards/generate requests.
func (h *FlashcardHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	var req GenerateFlashcardsRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		// A blank topic never reaches the service or the language model.
		topicErr := generation.NewInputError(generation.ErrEmptyTopic)
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(topicErr), err)
		return
	}

	flashcards, err := h.service.GenerateFlashcards(r.Context(), req.Topic)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	logger.FromContextOrDefault(r.Context()).InfoContext(r.Context(), "flashcards generated",
		"flashcard_count", len(flashcards))

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateFlashcardsResponse{Flashcards: flashcards})
}
