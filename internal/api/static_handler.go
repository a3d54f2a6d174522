package api

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
)

const indexFile = "index.html"

// ErrStaticDirMissing is returned when the static asset directory does not exist.
var ErrStaticDirMissing = errors.New("static directory does not exist")

// StaticHandler serves a single-page application from a directory. Paths that
// do not resolve to a regular file are answered with index.html so the
// client-side router can handle them.
type StaticHandler struct {
	dir        string
	fileServer http.Handler
}

// NewStaticHandler creates a StaticHandler rooted at dir.
func NewStaticHandler(dir string) (*StaticHandler, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrStaticDirMissing, dir)
		}
		return nil, fmt.Errorf("failed to stat static directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("static path is not a directory: %s", dir)
	}

	return &StaticHandler{
		dir:        dir,
		fileServer: http.FileServer(http.Dir(dir)),
	}, nil
}

// ServeHTTP implements http.Handler.
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		MethodNotAllowedHandler(w, r)
		return
	}

	cleaned := path.Clean("/" + r.URL.Path)
	if cleaned != "/" {
		info, err := os.Stat(filepath.Join(h.dir, filepath.FromSlash(cleaned)))
		if err == nil && !info.IsDir() {
			h.fileServer.ServeHTTP(w, r)
			return
		}
	}

	h.serveIndex(w, r)
}

func (h *StaticHandler) serveIndex(w http.ResponseWriter, r *http.Request) {
	index := filepath.Join(h.dir, indexFile)
	if _, err := os.Stat(index); err != nil {
		NotFoundHandler(w, r)
		return
	}
	http.ServeFile(w, r, index)
}
