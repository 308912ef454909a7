package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/cardnight/ledger/internal/sse"
)

// EventsHandler streams ledger events over SSE
type EventsHandler struct {
	hubManager *sse.HubManager
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(hubManager *sse.HubManager) *EventsHandler {
	return &EventsHandler{hubManager: hubManager}
}

// Stream handles GET /api/v1/events?topic=games|players
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	topic, err := sse.ParseTopic(r.URL.Query().Get("topic"))
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	hub := h.hubManager.GetOrCreateHub(topic)
	sse.ServeSSE(w, r, hub, uuid.NewString())
}
