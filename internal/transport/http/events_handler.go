package http

import (
	"net/http"

	"github.com/light-bringer/aptmart-service/internal/app/outbox/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/outbox/queries/list_events"
	"github.com/light-bringer/aptmart-service/internal/pkg/logging"
)

// EventsHandler handles HTTP requests for outbox events.
type EventsHandler struct {
	listEvents *list_events.Query
	log        *logging.Logger
}

// NewEventsHandler creates a new HTTP events handler.
func NewEventsHandler(listEvents *list_events.Query, log *logging.Logger) *EventsHandler {
	return &EventsHandler{
		listEvents: listEvents,
		log:        log,
	}
}

// ListEventsResponse represents the HTTP response for listing events.
type ListEventsResponse struct {
	Events     []*contracts.Event `json:"events"`
	TotalCount int64              `json:"total_count"`
}

// ServeHTTP handles GET /api/v1/admin/events.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	query := r.URL.Query()
	events, err := h.listEvents.Execute(r.Context(), &list_events.Request{
		EventType:   query.Get("event_type"),
		AggregateID: query.Get("aggregate_id"),
		Status:      query.Get("status"),
		Limit:       limit,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if events == nil {
		events = []*contracts.Event{}
	}

	writeJSON(w, http.StatusOK, ListEventsResponse{
		Events:     events,
		TotalCount: int64(len(events)),
	})
}
