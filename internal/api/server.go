// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/canon/internal/core/assistant"
	"github.com/taibuivan/canon/internal/core/bible"
	"github.com/taibuivan/canon/internal/core/curation"
	"github.com/taibuivan/canon/internal/core/highlight"
	"github.com/taibuivan/canon/internal/core/lexicon"
	"github.com/taibuivan/canon/internal/core/manuscript"
	"github.com/taibuivan/canon/internal/core/note"
	"github.com/taibuivan/canon/internal/core/sermon"
	"github.com/taibuivan/canon/internal/core/session"
	"github.com/taibuivan/canon/internal/platform/config"
	"github.com/taibuivan/canon/internal/platform/constants"
	"github.com/taibuivan/canon/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. Always 200 while the process runs.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. 200 only when postgres and redis answer.
	Readiness http.HandlerFunc

	Bible      *bible.Handler
	Session    *session.Handler
	Note       *note.Handler
	Highlight  *highlight.Handler
	Lexicon    *lexicon.Handler
	Manuscript *manuscript.Handler
	Sermon     *sermon.Handler
	Curation   *curation.Handler
	Assistant  *assistant.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := NewRouter(context, log, h)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

/*
NewRouter builds the routing tree.

Description: Every domain is mounted under /api. CORS runs before routing
so preflight requests never reach a handler.
*/
func NewRouter(context context.Context, log *slog.Logger, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(context, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst))
	r.Use(middleware.PanicRecovery(log))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api", func(api chi.Router) {
		api.Get("/health", StaticHealth)

		api.Mount("/translations", h.Bible.TranslationRoutes())
		api.Mount("/bible", h.Bible.BibleRoutes())
		api.Mount("/study-sessions", h.Session.Routes())
		api.Mount("/notes", h.Note.Routes())
		api.Mount("/highlights", h.Highlight.Routes())
		api.Mount("/lexicons", h.Lexicon.Routes())
		api.Mount("/manuscripts", h.Manuscript.ManuscriptRoutes())
		api.Mount("/textual-criticism", h.Manuscript.CriticismRoutes())
		api.Mount("/sermons", h.Sermon.Routes())
		api.Mount("/curated", h.Curation.Routes())
		api.Mount("/assistant", h.Assistant.Routes())
		api.Mount("/didaskalos", h.Assistant.Routes())
	})

	return r
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
