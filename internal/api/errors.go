package api

import (
	"net/http"

	"github.com/phrazzld/flashcard-genie/internal/generation"
)

// UnexpectedErrorMessage is returned to clients for failures outside the
// generation error taxonomy.
const UnexpectedErrorMessage = "An unexpected error occurred while generating flashcards."

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Every generation failure (input, upstream, parse, validation) is a client
// error; anything else is an internal server error.
func MapErrorToStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if _, ok := generation.AsError(err); ok {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// GetSafeErrorMessage returns the message that may be shown to a client.
// Generation failures carry a descriptive message; unexpected failures are
// reduced to a generic one so no internal detail leaks.
func GetSafeErrorMessage(err error) string {
	if genErr, ok := generation.AsError(err); ok {
		return genErr.Message()
	}
	return UnexpectedErrorMessage
}
