package main

import (
	"errors"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/flashcard-genie/internal/api"
	apiMiddleware "github.com/phrazzld/flashcard-genie/internal/api/middleware"
	"github.com/phrazzld/flashcard-genie/internal/api/shared"
	"github.com/rs/cors"
)

// setupRouter creates the router with all middleware and routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(app.corsHandler().Handler)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(app.metrics.Middleware)
	r.Use(apiMiddleware.Recover)

	flashcardHandler := api.NewFlashcardHandler(app.flashcardService)

	r.Route("/api", func(r chi.Router) {
		r.NotFound(api.NotFoundHandler)
		r.MethodNotAllowed(api.MethodNotAllowedHandler)

		r.Get("/health", api.HealthHandler)
		r.Post("/v1/flashcards/generate", flashcardHandler.GenerateFlashcards)
	})

	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	app.mountStatic(r)

	return r
}

// With credentials enabled a literal "*" is rejected by browsers, so an
// allow-all configuration echoes the request Origin instead.
func (app *application) corsHandler() *cors.Cors {
	origins := app.config.Server.CORS.AllowedOrigins
	var allowOrigin func(string) bool
	if slices.Contains(origins, "*") {
		origins = nil
		allowOrigin = func(string) bool { return true }
	}

	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowOriginFunc:  allowOrigin,
		AllowCredentials: true,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{shared.TraceIDHeader},
	})
}

// mountStatic serves the frontend when the static directory exists.
func (app *application) mountStatic(r chi.Router) {
	dir := app.config.Server.StaticDir
	if dir == "" {
		app.logger.Info("static directory not configured, frontend not served")
		return
	}

	static, err := api.NewStaticHandler(dir)
	if err != nil {
		if errors.Is(err, api.ErrStaticDirMissing) {
			app.logger.Warn("static directory not found, frontend not served", "static_dir", dir)
		} else {
			app.logger.Warn("static directory unusable, frontend not served", "static_dir", dir, "error", err)
		}
		return
	}

	r.Handle("/*", static)
	app.logger.Info("serving static files", "static_dir", dir)
}
