// Package server exposes the phrase mining pipeline over HTTP: document
// upload and extraction, plus read access to stored results.
package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	phrasemill "github.com/phrasemill/phrasemill/pkg/phrasemill"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/extract"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/mine"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/store"
)

// Config holds server settings.
type Config struct {
	Addr           string
	AllowedOrigins []string
	MaxUploadBytes int64
	Mining         mine.Config
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	pipeline   *phrasemill.Pipeline
	store      store.Store
	validator  *extract.Validator
	cfg        Config
}

// New builds the server and wires all routes.
func New(cfg Config, pipeline *phrasemill.Pipeline, st store.Store) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10 << 20
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	cfg.Mining = cfg.Mining.WithDefaults()

	s := &Server{
		pipeline:  pipeline,
		store:     st,
		validator: extract.NewValidator(cfg.MaxUploadBytes, nil),
		cfg:       cfg,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/api/health", s.handleHealth)
	r.Post("/api/extract", s.handleExtract)
	r.Get("/api/documents", s.handleListDocuments)
	r.Get("/api/documents/{id}/phrases", s.handleDocumentPhrases)

	s.httpServer = &http.Server{Addr: cfg.Addr, Handler: r}
	return s
}

// Handler returns the HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	log.Printf("HTTP server listening on %s", s.cfg.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
