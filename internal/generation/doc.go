// Package generation turns a topic into validated flashcards using an external
// LLM. It owns the prompt contract with the model and the pipeline that coerces
// free-text model output into an ordered list of domain.Flashcard values.
//
// The language model itself sits behind the Generator interface; the Gemini
// implementation lives in internal/platform/gemini. Parsing and validation are
// pure functions of the raw text, so they are tested with canned fixtures.
//
// Failures are reported as *Error values carrying a Category (input, generation,
// parse, validation) and a sentinel kind that callers match with errors.Is.
package generation
