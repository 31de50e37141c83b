// Package server exposes the cube pipeline over HTTP: validation,
// scramble generation, solving via the external service, and a websocket
// stream that replays a solution step by step.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/seamusw/cubelab/internal/config"
	"github.com/seamusw/cubelab/internal/solver"
	"github.com/seamusw/cubelab/internal/storage"
)

// Server carries the handler dependencies.
type Server struct {
	cfg     config.Config
	solver  solver.Solver
	solves  *storage.SolveRepository // nil disables history recording
	version string
}

// New creates a Server. solves may be nil when no database is configured.
func New(cfg config.Config, slv solver.Solver, solves *storage.SolveRepository, version string) *Server {
	return &Server{
		cfg:     cfg,
		solver:  slv,
		solves:  solves,
		version: version,
	}
}

// Handler builds the route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		// The solve call is bounded by the solver timeout; everything
		// else is instant.
		r.Use(middleware.Timeout(s.cfg.SolverTimeout() + 5*time.Second))
		r.Post("/solve", s.handleSolve)
		r.Post("/validate", s.handleValidate)
		r.Get("/scramble", s.handleScramble)
		r.Get("/status", s.handleStatus)
	})

	// Long-lived connection, deliberately outside the timeout middleware.
	r.Get("/ws/playback", s.handlePlayback)

	return r
}

// ListenAndServe runs the API on the configured address until the server
// fails.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv.ListenAndServe()
}
