// Package api implements the HTTP layer for the tagline service.
// Handlers are methods on *Server. Each handler file is responsible for one
// resource group and only imports the dependencies it actually uses.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nyashahama/tagline-studio-backend/internal/tagline"
)

// Config holds values read from environment variables at startup.
type Config struct {
	// Env is "production", "staging", or "development".
	Env string

	// CORSOrigin is the allowed browser origin. Empty reflects the request
	// origin outside production and allows "*" in production.
	CORSOrigin string

	// Backend names the wired generator in logs and metrics
	// ("openai" or "template").
	Backend string
}

// Server holds all shared dependencies. Each handler file attaches methods to
// this type and uses only the fields it needs.
type Server struct {
	// generator is either the deterministic engine or the external adapter.
	generator tagline.Generator

	cfg    Config
	logger *slog.Logger
}

// NewServer constructs the Server and wires the chi router. The returned
// http.Handler is ready to pass to http.Server.
func NewServer(generator tagline.Generator, cfg Config, logger *slog.Logger) http.Handler {
	s := &Server{
		generator: generator,
		cfg:       cfg,
		logger:    logger,
	}

	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	// ── Global middleware ─────────────────────────────────────────────────────
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(s.corsMiddleware)

	// ── Health / metrics ──────────────────────────────────────────────────────
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	// ── API ───────────────────────────────────────────────────────────────────
	// No server-side timeout on generate: the adapter call runs to completion
	// and the outer http.Server's WriteTimeout is the only bound.
	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", s.handleGenerate)
	})

	return r
}
