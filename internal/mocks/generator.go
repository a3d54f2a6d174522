package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/flashcard-genie/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, prompt string, params generation.Params) (string, error)

	// Default response values
	Text string
	Err  error

	// Call tracking for verification
	GenerateCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Generate was called
		Count int

		// Prompts contains all prompts passed to Generate calls
		Prompts []string

		// Params contains all parameters passed to Generate calls
		Params []generation.Params
	}
}

// Generate implements the generation.Generator interface
func (m *MockGenerator) Generate(
	ctx context.Context,
	prompt string,
	params generation.Params,
) (string, error) {
	m.GenerateCalls.mu.Lock()
	m.GenerateCalls.Count++
	m.GenerateCalls.Prompts = append(m.GenerateCalls.Prompts, prompt)
	m.GenerateCalls.Params = append(m.GenerateCalls.Params, params)
	m.GenerateCalls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt, params)
	}

	return m.Text, m.Err
}

// CallCount returns how many times Generate was called.
func (m *MockGenerator) CallCount() int {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	return m.GenerateCalls.Count
}

// LastPrompt returns the prompt of the most recent call, or "" if there was none.
func (m *MockGenerator) LastPrompt() string {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	if len(m.GenerateCalls.Prompts) == 0 {
		return ""
	}
	return m.GenerateCalls.Prompts[len(m.GenerateCalls.Prompts)-1]
}

// NewMockGeneratorWithText creates a MockGenerator that returns the given raw model text
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{
		Text: text,
	}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{
		Err: err,
	}
}

// MockGeneratorUnavailable creates a MockGenerator that simulates an upstream failure
func MockGeneratorUnavailable(cause error) *MockGenerator {
	return &MockGenerator{
		Err: generation.NewGenerationError(generation.ErrUpstreamUnavailable, cause),
	}
}

// MockGeneratorWithEmptyResponse creates a MockGenerator that simulates a response with no content
func MockGeneratorWithEmptyResponse() *MockGenerator {
	return &MockGenerator{
		Err: generation.NewGenerationError(generation.ErrEmptyResponse, nil),
	}
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()

	m.GenerateCalls.Count = 0
	m.GenerateCalls.Prompts = nil
	m.GenerateCalls.Params = nil
}
