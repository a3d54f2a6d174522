package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/phrazzld/flashcard-genie/internal/generation"
	"github.com/phrazzld/flashcard-genie/internal/mocks"
	"github.com/phrazzld/flashcard-genie/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplication(t *testing.T) {
	t.Parallel()

	log, buf := logger.GetTestLogger(t)

	app, err := newApplication(context.Background(), testConfig(""), log)

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.NotNil(t, app.metrics)
	assert.NotNil(t, app.flashcardService)
	logger.AssertLogContains(t, buf, "LLM generator initialized")
}

func TestNewApplication_MissingAPIKey(t *testing.T) {
	t.Parallel()

	log, _ := logger.GetTestLogger(t)
	cfg := testConfig("")
	cfg.LLM.GeminiAPIKey = ""

	app, err := newApplication(context.Background(), cfg, log)

	assert.Nil(t, app)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestNewApplicationWithGenerator_BadPromptTemplate(t *testing.T) {
	t.Parallel()

	log, _ := logger.GetTestLogger(t)
	cfg := testConfig("")
	cfg.LLM.PromptTemplatePath = filepath.Join(t.TempDir(), "missing.tmpl")

	app, err := newApplicationWithGenerator(cfg, log, mocks.NewMockGeneratorWithText("[]"))

	assert.Nil(t, app)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "failed to load prompt template")
}

func TestNewApplicationWithGenerator_NilGenerator(t *testing.T) {
	t.Parallel()

	log, _ := logger.GetTestLogger(t)

	_, err := newApplicationWithGenerator(testConfig(""), log, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "generator cannot be nil")
}
