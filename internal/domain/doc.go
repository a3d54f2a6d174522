// Package domain contains the core value types of the flashcard service.
// It has no dependencies on transport, configuration or the upstream model.
package domain
