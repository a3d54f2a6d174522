package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/flashcard-genie/internal/domain"
)

// MockFlashcardService implements api.FlashcardService for testing
type MockFlashcardService struct {
	// GenerateFlashcardsFn allows test cases to mock the GenerateFlashcards behavior
	GenerateFlashcardsFn func(ctx context.Context, topic string) ([]domain.Flashcard, error)

	// Default response values
	Flashcards []domain.Flashcard
	Err        error

	GenerateFlashcardsCalls struct {
		mu     sync.Mutex
		Count  int
		Topics []string
	}
}

// GenerateFlashcards implements the api.FlashcardService interface
func (m *MockFlashcardService) GenerateFlashcards(ctx context.Context, topic string) ([]domain.Flashcard, error) {
	m.GenerateFlashcardsCalls.mu.Lock()
	m.GenerateFlashcardsCalls.Count++
	m.GenerateFlashcardsCalls.Topics = append(m.GenerateFlashcardsCalls.Topics, topic)
	m.GenerateFlashcardsCalls.mu.Unlock()

	if m.GenerateFlashcardsFn != nil {
		return m.GenerateFlashcardsFn(ctx, topic)
	}

	return m.Flashcards, m.Err
}

// CallCount returns how many times GenerateFlashcards was called.
func (m *MockFlashcardService) CallCount() int {
	m.GenerateFlashcardsCalls.mu.Lock()
	defer m.GenerateFlashcardsCalls.mu.Unlock()
	return m.GenerateFlashcardsCalls.Count
}

// LastTopic returns the topic of the most recent call, or "" if there was none.
func (m *MockFlashcardService) LastTopic() string {
	m.GenerateFlashcardsCalls.mu.Lock()
	defer m.GenerateFlashcardsCalls.mu.Unlock()
	if len(m.GenerateFlashcardsCalls.Topics) == 0 {
		return ""
	}
	return m.GenerateFlashcardsCalls.Topics[len(m.GenerateFlashcardsCalls.Topics)-1]
}

// NewMockFlashcardServiceWithCards creates a MockFlashcardService returning the given flashcards
func NewMockFlashcardServiceWithCards(flashcards ...domain.Flashcard) *MockFlashcardService {
	return &MockFlashcardService{Flashcards: flashcards}
}

// NewMockFlashcardServiceWithError creates a MockFlashcardService returning the given error
func NewMockFlashcardServiceWithError(err error) *MockFlashcardService {
	return &MockFlashcardService{Err: err}
}
