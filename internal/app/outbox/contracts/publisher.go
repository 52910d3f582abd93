package contracts

import (
	"context"
	"encoding/json"
	"time"
)

// Notification is what the relay hands to publishers for each delivered event.
type Notification struct {
	EventID     string          `json:"event_id"`
	EventType   string          `json:"event_type"`
	AggregateID string          `json:"aggregate_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Payload     json.RawMessage `json:"-"`
}

// Publisher receives relayed events.
type Publisher interface {
	Publish(ctx context.Context, n Notification) error
}
