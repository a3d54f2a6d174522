package generation

import (
	"context"
)

// Default generation parameters sent with every request.
const (
	DefaultCandidateCount int32   = 1
	DefaultTemperature    float32 = 0.7
)

// Params holds the sampling parameters for a single generation call.
type Params struct {
	// CandidateCount is the number of candidates the model should return.
	CandidateCount int32

	// Temperature controls sampling randomness.
	Temperature float32
}

// DefaultParams returns the parameters used for flashcard generation.
func DefaultParams() Params {
	return Params{
		CandidateCount: DefaultCandidateCount,
		Temperature:    DefaultTemperature,
	}
}

// Generator defines the interface for producing raw text from a prompt.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type Generator interface {
	// Generate sends prompt to the language model and returns the raw text of the
	// first content part of the first candidate.
	//
	// Implementations return an *Error of category CategoryGeneration when the call
	// fails or the response is empty. Exactly one upstream call is made per invocation.
	Generate(ctx context.Context, prompt string, params Params) (string, error)
}
