package generation

import (
	"errors"
	"fmt"
)

// Error kinds returned by the generation package. Each is carried inside an *Error
// and can be matched with errors.Is.
var (
	// ErrEmptyTopic is returned when the topic is empty or only whitespace.
	ErrEmptyTopic = errors.New("topic cannot be empty")

	// ErrUpstreamUnavailable is returned when the call to the language model fails.
	ErrUpstreamUnavailable = errors.New("language model unavailable")

	// ErrEmptyResponse is returned when the language model returns no candidates or no content.
	ErrEmptyResponse = errors.New("empty response from language model")

	// ErrContentBlocked is returned when the language model blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidJSON is returned when the model output is not valid JSON after fence stripping.
	ErrInvalidJSON = errors.New("invalid flashcard data format from language model")

	// ErrNotAList is returned when the model output is valid JSON but not an array.
	ErrNotAList = errors.New("generated flashcards are not in the expected list format")

	// ErrNoValidItems is returned when every element of the model output failed validation.
	ErrNoValidItems = errors.New("no valid flashcards found in the model response after validation")

	// ErrNoFlashcards is returned when the model output is an empty array.
	ErrNoFlashcards = errors.New("language model returned no flashcards for this topic")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// Category groups error kinds so callers can branch on the kind of failure
// without inspecting messages.
type Category string

// Error categories.
const (
	CategoryInput      Category = "input"
	CategoryGeneration Category = "generation"
	CategoryParse      Category = "parse"
	CategoryValidation Category = "validation"
)

// Error is a recoverable failure of the generation pipeline.
type Error struct {
	// Category is the taxonomy bucket the failure belongs to.
	Category Category

	// Kind is one of the sentinel errors declared in this package.
	Kind error

	// Detail is optional client-safe context, such as an excerpt of the model output.
	Detail string

	// Cause is the underlying error, if any. It is never shown to clients.
	Cause error
}

// Error implements the error interface. The cause is included so logs carry it.
func (e *Error) Error() string {
	msg := e.Message()
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Message returns the client-facing description: the kind plus any detail, without the cause.
func (e *Error) Message() string {
	if e.Kind == nil {
		return string(e.Category) + " error"
	}
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Detail)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// NewInputError reports a problem with the caller's input.
func NewInputError(kind error) *Error {
	return &Error{Category: CategoryInput, Kind: kind}
}

// NewGenerationError reports a failure talking to the language model.
func NewGenerationError(kind error, cause error) *Error {
	return &Error{Category: CategoryGeneration, Kind: kind, Cause: cause}
}

// NewParseError reports model output that could not be decoded into the expected shape.
func NewParseError(kind error, detail string) *Error {
	return &Error{Category: CategoryParse, Kind: kind, Detail: detail}
}

// NewValidationError reports model output that decoded but held no usable flashcards.
func NewValidationError(kind error) *Error {
	return &Error{Category: CategoryValidation, Kind: kind}
}

// AsError returns the *Error in err's chain, if there is one.
func AsError(err error) (*Error, bool) {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr, true
	}
	return nil, false
}

// CategoryOf returns the category of err, or "" if err is not a generation error.
func CategoryOf(err error) Category {
	if genErr, ok := AsError(err); ok {
		return genErr.Category
	}
	return ""
}
