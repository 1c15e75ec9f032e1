// Package server exposes the plan pipeline and narrative store over HTTP.
//
// The API is unauthenticated and intended to sit behind a reverse proxy.
// Routes:
//
//	POST   /v1/plans                           build a plan (and artifacts) from a narrative
//	GET    /v1/plans/{template}/storyboard.svg  template preview with sample content
//	POST   /v1/narratives                      save a narrative
//	GET    /v1/narratives                      list saved narratives
//	GET    /v1/narratives/{id}                 fetch a narrative
//	DELETE /v1/narratives/{id}                 delete a narrative and its shares
//	POST   /v1/narratives/{id}/shares          mint a share token
//	GET    /s/{token}                          render a shared narrative
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/conclusiv/conclusiv/pkg/pipeline"
	"github.com/conclusiv/conclusiv/pkg/store"
)

// Server wires the HTTP routes to a pipeline runner and a store.
type Server struct {
	router chi.Router
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
}

// New creates a Server. A nil runner gets an uncached default; a nil
// store gets an in-memory one; a nil logger discards.
func New(runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	if st == nil {
		st = store.NewMemStore()
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		runner: runner,
		store:  st,
		logger: logger,
	}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/plans", s.handleBuildPlan)
		r.Get("/plans/{template}/storyboard.svg", s.handleTemplatePreview)

		r.Route("/narratives", func(r chi.Router) {
			r.Post("/", s.handleSaveNarrative)
			r.Get("/", s.handleListNarratives)
			r.Get("/{id}", s.handleGetNarrative)
			r.Delete("/{id}", s.handleDeleteNarrative)
			r.Post("/{id}/shares", s.handleCreateShare)
		})
	})

	r.Get("/s/{token}", s.handleShare)

	return r
}

// requestLogger logs each request with method, path, status and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
