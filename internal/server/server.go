// Package server implements the campaigner HTTP API server.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/promoops/campaigner/internal/importer"
	"github.com/promoops/campaigner/internal/store"
)

// Server is the campaigner HTTP API server. It receives board webhook
// events and exposes the persisted import results.
type Server struct {
	importer *importer.Importer
	store    store.Store
	router   chi.Router
	addr     string
	srv      *http.Server
}

// New creates a new HTTP server.
func New(addr string, imp *importer.Importer, st store.Store) *Server {
	s := &Server{
		importer: imp,
		store:    st,
		addr:     addr,
	}

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Content-Type", "application/json"))

	s.router = r
	s.registerRoutes(r)
	return s
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	s.srv = &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	fmt.Printf("campaigner server listening on %s\n", s.addr)
	return s.srv.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
