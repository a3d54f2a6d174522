package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/flashcard-genie/internal/api"
	"github.com/phrazzld/flashcard-genie/internal/api/shared"
	"github.com/phrazzld/flashcard-genie/internal/platform/logger"
)

// Recover turns a panic in a downstream handler into a 500 response with the
// standard JSON error body. http.ErrAbortHandler is re-raised so net/http can
// abort the connection.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}

			logger.FromContextOrDefault(r.Context()).ErrorContext(r.Context(), "recovered from panic",
				slog.String("panic", fmt.Sprint(rec)),
				slog.String("stack", string(debug.Stack())))

			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				api.UnexpectedErrorMessage, fmt.Errorf("panic: %w", err))
		}()

		next.ServeHTTP(w, r)
	})
}
