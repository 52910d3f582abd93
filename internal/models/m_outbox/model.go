package m_outbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Model builds mutations for the outbox_events table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a pending event row stamped with the commit timestamp.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns, []interface{}{
		data.EventID,
		data.EventType,
		data.AggregateID,
		data.Payload,
		data.Status,
		spanner.CommitTimestamp,
		data.ProcessedAt,
		data.RetryCount,
		data.ErrorMessage,
	})
}

// CompletedMut marks an event as delivered.
func (m *Model) CompletedMut(eventID string, at time.Time) *spanner.Mutation {
	return spanner.Update(TableName,
		[]string{EventID, Status, ProcessedAt, ErrorMessage},
		[]interface{}{eventID, StatusCompleted, at, spanner.NullString{}},
	)
}

// FailedMut records a delivery failure.
func (m *Model) FailedMut(eventID string, retryCount int64, at time.Time, reason string) *spanner.Mutation {
	return spanner.Update(TableName,
		[]string{EventID, Status, ProcessedAt, RetryCount, ErrorMessage},
		[]interface{}{eventID, StatusFailed, at, retryCount, spanner.NullString{StringVal: reason, Valid: true}},
	)
}

// DeleteMut creates a delete mutation.
func (m *Model) DeleteMut(eventID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{eventID})
}

// RetryMut keeps an event pending and records the last delivery error.
func (m *Model) RetryMut(eventID string, retryCount int64, reason string) *spanner.Mutation {
	return spanner.Update(TableName,
		[]string{EventID, RetryCount, ErrorMessage},
		[]interface{}{eventID, retryCount, spanner.NullString{StringVal: reason, Valid: true}},
	)
}
