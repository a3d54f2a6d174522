package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/flashcard-genie/internal/api/shared"
	"github.com/phrazzld/flashcard-genie/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	t.Parallel()

	log, buf := logger.GetTestLogger(t)

	var seenTraceID string
	handler := Trace(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		logger.FromContextOrDefault(r.Context()).InfoContext(r.Context(), "inside handler")
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.NotEmpty(t, seenTraceID)
	assert.Equal(t, seenTraceID, rec.Header().Get(shared.TraceIDHeader))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	logger.AssertLogContains(t, buf, "inside handler")
	logger.AssertLogField(t, buf, "trace_id", seenTraceID)
	logger.AssertLogField(t, buf, "status", float64(http.StatusAccepted))
}

func TestTrace_CarriesChiRequestID(t *testing.T) {
	t.Parallel()

	log, buf := logger.GetTestLogger(t)

	handler := chimw.RequestID(Trace(log)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logger.FromContextOrDefault(r.Context()).InfoContext(r.Context(), "with request id")
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimw.RequestIDHeader, "client-req-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	logger.AssertLogField(t, buf, "request_id", "client-req-1")
}

func TestTrace_UniquePerRequest(t *testing.T) {
	t.Parallel()

	handler := Trace(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	first := httptest.NewRecorder()
	second := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t, first.Header().Get(shared.TraceIDHeader), second.Header().Get(shared.TraceIDHeader))
}
