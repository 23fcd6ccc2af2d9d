package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/promoops/campaigner/internal/store"
	"github.com/promoops/campaigner/pkg/types"
)

// Import triggers an import run for an explicit board item. Unlike
// the webhook entry point, the HTTP status reflects the outcome.
func (h *Handlers) Import(w http.ResponseWriter, r *http.Request) {
	var event types.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if event.BoardID == "" || event.ItemID == "" {
		h.writeError(w, http.StatusBadRequest, "boardId and itemId are required", nil)
		return
	}

	res := h.importer.Import(r.Context(), event)
	switch {
	case res.IsSuccess():
		writeResult(w, http.StatusOK, res)
	case res.IsFailure():
		writeResult(w, http.StatusUnprocessableEntity, res)
	default:
		writeResult(w, http.StatusBadGateway, res)
	}
}

// GetCampaign returns the latest imported campaign for a board item.
func (h *Handlers) GetCampaign(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	rec, err := h.store.GetCampaign(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "campaign not found", nil)
			return
		}
		h.writeError(w, http.StatusInternalServerError, "fetching campaign", err)
		return
	}

	_ = json.NewEncoder(w).Encode(rec)
}

// ListRuns returns the import runs of a board, newest first.
func (h *Handlers) ListRuns(w http.ResponseWriter, r *http.Request) {
	boardID := chi.URLParam(r, "boardID")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			h.writeError(w, http.StatusBadRequest, "limit must be a non-negative integer", nil)
			return
		}
		limit = v
	}

	records, err := h.store.ListCampaigns(r.Context(), boardID, limit)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "listing runs", err)
		return
	}
	if records == nil {
		records = []store.Record{}
	}

	_ = json.NewEncoder(w).Encode(records)
}
