package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := newRootCommand()

	assert.Equal(t, "flashcard-genie", cmd.Use)
	flag := cmd.Flags().Lookup("config")
	require.NotNil(t, flag)
	assert.Empty(t, flag.DefValue)
}

func TestRootCommand_MissingConfigFile(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})

	err := cmd.ExecuteContext(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"unexpected"})

	assert.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestRun_MissingAPIKey(t *testing.T) {
	t.Setenv("FLASHCARDS_LLM_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	err := run(context.Background(), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
