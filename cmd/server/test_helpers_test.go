package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/flashcard-genie/internal/config"
	"github.com/phrazzld/flashcard-genie/internal/generation"
	"github.com/phrazzld/flashcard-genie/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

// testConfig returns a valid configuration serving static files from staticDir.
func testConfig(staticDir string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   config.DefaultPort,
			LogLevel:               "debug",
			StaticDir:              staticDir,
			ShutdownTimeoutSeconds: 1,
			CORS: config.CORSConfig{
				AllowedOrigins: []string{"*"},
			},
		},
		LLM: config.LLMConfig{
			GeminiAPIKey: "test-api-key",
			ModelName:    config.DefaultModelName,
		},
	}
}

// newTestApp builds an application around gen and returns the log buffer.
func newTestApp(t *testing.T, cfg *config.Config, gen generation.Generator) (*application, *logger.TestLogBuffer) {
	t.Helper()

	log, buf := logger.GetTestLogger(t)
	app, err := newApplicationWithGenerator(cfg, log, gen)
	require.NoError(t, err)
	return app, buf
}

// writeStaticSite creates a directory containing a minimal SPA build.
func writeStaticSite(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>genie</html>"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("run()"), 0600))
	return dir
}
