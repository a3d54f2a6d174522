package generation

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"
)

//go:embed prompts/flashcards.tmpl
var defaultPromptTemplate string

// promptData represents the data passed to the prompt template
type promptData struct {
	Topic string
}

// PromptBuilder renders the instruction sent to the language model for a topic.
// Rendering is deterministic: the same topic always yields the same prompt.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder parses the prompt template at path. An empty path selects the
// template embedded in the binary.
func NewPromptBuilder(path string) (*PromptBuilder, error) {
	content := defaultPromptTemplate
	name := "flashcards"

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
				ErrInvalidConfig, path, err)
		}
		content = string(data)
		name = path
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidConfig, err)
	}

	return &PromptBuilder{tmpl: tmpl}, nil
}

// Build renders the prompt for topic. The topic is trimmed first; an empty
// result is rejected with an input error.
func (b *PromptBuilder) Build(topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", NewInputError(ErrEmptyTopic)
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, promptData{Topic: topic}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}
