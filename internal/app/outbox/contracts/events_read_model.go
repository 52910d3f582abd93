package contracts

import "context"

// EventFilter narrows an event listing. Empty fields match everything.
type EventFilter struct {
	EventType   string
	AggregateID string
	Status      string
	Limit       int64
}

// EventsReadModel lists outbox events.
type EventsReadModel interface {
	ListEvents(ctx context.Context, filter EventFilter) ([]*Event, error)
}
