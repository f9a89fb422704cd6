// Package router sets up all HTTP routes and middleware chains for the
// SiteSmith API. Every route speaks JSON except the preview and download
// endpoints, which serve assembled HTML documents.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"sitesmith/internal/handlers"
	"sitesmith/internal/middleware"
)

// Limits holds the per-IP rate limiter settings for the two route groups.
type Limits struct {
	// API is the requests-per-minute allowance for read/update routes.
	API int

	// Generate is the tighter allowance for the generation endpoint,
	// where every request costs a model call.
	Generate int
}

// New creates and returns the configured Chi router with all middleware
// and routes wired up. The returned limiters must be stopped on shutdown.
func New(api *handlers.API, limits Limits) (chi.Router, []*middleware.RateLimiter) {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.Identity)

	// Health check — unauthenticated, unlimited.
	r.Get("/health", healthHandler)

	apiLimiter := middleware.NewRateLimiter(limits.API, time.Minute)
	generateLimiter := middleware.NewRateLimiter(limits.Generate, time.Minute)

	r.Route("/api", func(r chi.Router) {
		// Generation gets its own, tighter limiter.
		r.Group(func(r chi.Router) {
			r.Use(generateLimiter.Middleware)
			r.Post("/generate", api.Generate)
		})

		r.Group(func(r chi.Router) {
			r.Use(apiLimiter.Middleware)

			r.Route("/websites", func(r chi.Router) {
				r.Get("/", api.ListWebsites)
				r.Get("/{id}", api.GetWebsite)
				r.Patch("/{id}", api.UpdateWebsite)
				r.Delete("/{id}", api.DeleteWebsite)
				r.Get("/{id}/preview", api.PreviewWebsite)
				r.Get("/{id}/download", api.DownloadWebsite)
				r.Post("/{id}/publish", api.PublishWebsite)
			})

			r.Get("/prompts/{id}", api.GetPrompt)
		})
	})

	return r, []*middleware.RateLimiter{apiLimiter, generateLimiter}
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
