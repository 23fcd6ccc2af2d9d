package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/promoops/campaigner/pkg/types"
)

const maxWebhookBody = 1 << 20

// Webhook receives board platform notifications. A subscription
// handshake carries a challenge token that must be echoed back
// verbatim; everything else is an item event that triggers an import
// run. The platform retries on non-2xx, so event outcomes are always
// acknowledged with 200 and reported through the result body and the
// alert sinks.
func (h *Handlers) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "reading request body", err)
		return
	}

	if challenge := gjson.GetBytes(body, "challenge"); challenge.Exists() {
		_ = json.NewEncoder(w).Encode(map[string]string{"challenge": challenge.String()})
		return
	}

	event, ok := ParseWebhookEvent(body)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "payload is neither a challenge nor an item event", nil)
		return
	}

	res := h.importer.Import(r.Context(), event)
	writeResult(w, http.StatusOK, res)
}

// ParseWebhookEvent pulls the board and item IDs out of an event
// payload. The platform names the item "pulse" in webhook bodies.
// Shared with the Lambda webhook entry point.
func ParseWebhookEvent(body []byte) (types.Event, bool) {
	ev := gjson.GetBytes(body, "event")
	if !ev.Exists() {
		return types.Event{}, false
	}
	itemID := ev.Get("pulseId").String()
	if itemID == "" {
		itemID = ev.Get("itemId").String()
	}
	event := types.Event{
		BoardID: ev.Get("boardId").String(),
		ItemID:  itemID,
	}
	if event.BoardID == "" || event.ItemID == "" {
		return types.Event{}, false
	}
	return event, true
}

// writeResult emits an import result. The Data payload is omitted on
// non-success outcomes.
func writeResult(w http.ResponseWriter, status int, res types.Result[types.AssembledCampaign]) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(res)
}
