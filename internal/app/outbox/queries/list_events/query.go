package list_events

import (
	"context"

	"github.com/light-bringer/aptmart-service/internal/app/outbox/contracts"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Request contains filtering parameters for listing events.
type Request struct {
	EventType   string // e.g. "booking.placed"
	AggregateID string
	Status      string // pending, completed or failed
	Limit       int64
}

// Query handles the list events query.
type Query struct {
	readModel contracts.EventsReadModel
}

// NewQuery creates a new list events query.
func NewQuery(readModel contracts.EventsReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute lists events newest first with the limit clamped to [1, MaxLimit].
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.Event, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return q.readModel.ListEvents(ctx, contracts.EventFilter{
		EventType:   req.EventType,
		AggregateID: req.AggregateID,
		Status:      req.Status,
		Limit:       limit,
	})
}
