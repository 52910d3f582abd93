package contracts

import (
	"context"
	"encoding/json"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/aptmart-service/internal/pkg/events"
)

// Event is a stored outbox row.
type Event struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	AggregateID  string          `json:"aggregate_id"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	ProcessedAt  *time.Time      `json:"processed_at,omitempty"`
	RetryCount   int64           `json:"retry_count"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

// RetentionCount is the number of expired rows per status.
type RetentionCount struct {
	Completed int64
	Failed    int64
}

// Total returns Completed + Failed.
func (c RetentionCount) Total() int64 { return c.Completed + c.Failed }

// OutboxRepository persists and drains the transactional outbox.
type OutboxRepository interface {
	events.Writer

	// ListPending returns up to limit pending events, oldest first.
	ListPending(ctx context.Context, limit int) ([]*Event, error)

	CompletedMut(eventID string, at time.Time) *spanner.Mutation
	RetryMut(eventID string, retryCount int64, reason string) *spanner.Mutation
	FailedMut(eventID string, retryCount int64, at time.Time, reason string) *spanner.Mutation

	// CountExpired counts completed events processed before completedBefore and failed
	// events processed before failedBefore.
	CountExpired(ctx context.Context, completedBefore, failedBefore time.Time) (RetentionCount, error)

	// DeleteExpired deletes the rows CountExpired counts and returns how many were removed.
	DeleteExpired(ctx context.Context, completedBefore, failedBefore time.Time) (int64, error)
}
