package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/phrazzld/flashcard-genie/internal/mocks"
	"github.com/phrazzld/flashcard-genie/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_GracefulShutdown(t *testing.T) {
	t.Parallel()

	app, buf := newTestApp(t, testConfig(""), mocks.NewMockGeneratorWithText("[]"))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.serve(ctx, ln, app.setupRouter())
	}()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://%s/api/health", ln.Addr().String()))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "healthy")

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	logger.AssertLogContains(t, buf, "server shutdown completed")
}

func TestServe_ListenerFailure(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, testConfig(""), mocks.NewMockGeneratorWithText("[]"))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	err = app.serve(context.Background(), ln, http.NotFoundHandler())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server failed")
}

func TestShutdownTimeout(t *testing.T) {
	t.Parallel()

	cfg := testConfig("")
	cfg.Server.ShutdownTimeoutSeconds = 7
	app, _ := newTestApp(t, cfg, mocks.NewMockGeneratorWithText("[]"))

	assert.Equal(t, 7*time.Second, app.shutdownTimeout())
}
