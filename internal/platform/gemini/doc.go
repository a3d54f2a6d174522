// Package gemini implements generation.Generator on top of Google's Gemini API.
//
// It wraps the google.golang.org/genai client behind the small Models
// interface so the transport can be replaced in tests, sends exactly one
// GenerateContent request per call and translates the response (or its
// absence) into the generation package's error taxonomy. It never retries.
package gemini
