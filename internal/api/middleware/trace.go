// Package middleware contains HTTP middleware specific to the flashcard API.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/flashcard-genie/internal/api/shared"
	"github.com/phrazzld/flashcard-genie/internal/platform/logger"
)

// Trace assigns every request a trace ID, echoes it in the X-Trace-ID
// response header and stores a logger carrying the ID in the request context.
// It should be applied early in the middleware chain.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)
			if requestID := chimw.GetReqID(ctx); requestID != "" {
				ctx = logger.WithRequestID(ctx, requestID)
			}

			w.Header().Set(shared.TraceIDHeader, traceID)

			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			log.DebugContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(ww, r.WithContext(ctx))

			log.DebugContext(ctx, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)))
		})
	}
}
