package api

import (
	"net/http"

	"github.com/phrazzld/flashcard-genie/internal/api/shared"
)

// HealthHandler handles GET /api/health.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "Flashcard Genie API is healthy!",
	})
}

// NotFoundHandler answers unknown API paths with a JSON 404.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, "Not Found")
}

// MethodNotAllowedHandler answers known API paths called with the wrong method.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method Not Allowed")
}
