// Package handlers implements HTTP request handlers for the
// campaigner API.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/promoops/campaigner/internal/importer"
	"github.com/promoops/campaigner/internal/store"
)

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	importer *importer.Importer
	store    store.Store
	logger   *slog.Logger
}

// New creates a new Handlers instance.
func New(imp *importer.Importer, st store.Store) *Handlers {
	return &Handlers{
		importer: imp,
		store:    st,
		logger:   slog.Default(),
	}
}

// SetLogger overrides the default logger.
func (h *Handlers) SetLogger(l *slog.Logger) {
	if l != nil {
		h.logger = l
	}
}

// writeError logs the internal error and returns a sanitized JSON
// error to the client.
func (h *Handlers) writeError(w http.ResponseWriter, status int, msg string, err error) {
	if err != nil {
		h.logger.Error(msg, "error", err, "status", status)
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
