package domain

// Flashcard is a single term/definition pair produced by the generation pipeline.
// Flashcards have no identity of their own and are never persisted; two flashcards
// with the same term and definition are the same flashcard.
type Flashcard struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// NewFlashcard creates a Flashcard from a term and definition.
// Empty values are allowed; the generation pipeline only checks shape.
func NewFlashcard(term, definition string) Flashcard {
	return Flashcard{
		Term:       term,
		Definition: definition,
	}
}
