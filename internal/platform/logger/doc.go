// Package logger provides structured logging for the flashcard service.
//
// It builds a JSON log/slog logger at the configured level, carries
// request-scoped loggers through context.Context and offers helpers for
// capturing log output in tests.
package logger
