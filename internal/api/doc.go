// Package api handles incoming HTTP requests, request validation and response
// formatting for the flashcard service. It adapts HTTP to the generation
// service and translates generation failures into status codes and
// client-safe messages.
package api
