package server

import (
	"github.com/go-chi/chi/v5"

	"github.com/promoops/campaigner/internal/server/handlers"
)

func (s *Server) registerRoutes(r chi.Router) {
	h := handlers.New(s.importer, s.store)

	r.Route("/api", func(r chi.Router) {
		// Health
		r.Get("/health", h.Health)

		// Webhook entry point (board platform)
		r.Post("/webhook", h.Webhook)

		// Manual import trigger
		r.Post("/import", h.Import)

		// Persisted campaigns
		r.Get("/campaigns/{itemID}", h.GetCampaign)
		r.Get("/boards/{boardID}/runs", h.ListRuns)
	})
}
