package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/aptmart-service/internal/app/outbox/contracts"
	"github.com/light-bringer/aptmart-service/internal/models/m_outbox"
	"github.com/light-bringer/aptmart-service/internal/pkg/events"
	"github.com/light-bringer/aptmart-service/internal/pkg/query"
)

const expiredWhere = `(status = @completed AND processed_at < @completedCutoff)
   OR (status = @failed AND processed_at < @failedCutoff)`

// OutboxRepo implements OutboxRepository for Spanner.
type OutboxRepo struct {
	client *spanner.Client
	model  *m_outbox.Model
}

// NewOutboxRepo creates a new OutboxRepo. InsertMut does not touch the client.
func NewOutboxRepo(client *spanner.Client) *OutboxRepo {
	return &OutboxRepo{
		client: client,
		model:  m_outbox.NewModel(),
	}
}

var _ contracts.OutboxRepository = (*OutboxRepo)(nil)

// InsertMut creates a pending outbox row for a domain event.
func (r *OutboxRepo) InsertMut(e events.Event, payload string) *spanner.Mutation {
	return r.model.InsertMut(&m_outbox.Data{
		EventID:     uuid.New().String(),
		EventType:   e.EventType(),
		AggregateID: e.AggregateID(),
		Payload:     spanner.NullJSON{Value: jsonValue(payload), Valid: payload != ""},
		Status:      m_outbox.StatusPending,
	})
}

func (r *OutboxRepo) ListPending(ctx context.Context, limit int) ([]*contracts.Event, error) {
	stmt := query.From(m_outbox.TableName).
		Select(m_outbox.Columns...).
		Where(query.Eq(m_outbox.Status, m_outbox.StatusPending)).
		OrderBy(m_outbox.CreatedAt, query.Asc).
		Limit(int64(limit)).
		Build()

	return scanEvents(r.client.Single().Query(ctx, stmt))
}

func (r *OutboxRepo) CompletedMut(eventID string, at time.Time) *spanner.Mutation {
	return r.model.CompletedMut(eventID, at)
}

func (r *OutboxRepo) RetryMut(eventID string, retryCount int64, reason string) *spanner.Mutation {
	return r.model.RetryMut(eventID, retryCount, reason)
}

func (r *OutboxRepo) FailedMut(eventID string, retryCount int64, at time.Time, reason string) *spanner.Mutation {
	return r.model.FailedMut(eventID, retryCount, at, reason)
}

func (r *OutboxRepo) CountExpired(ctx context.Context, completedBefore, failedBefore time.Time) (contracts.RetentionCount, error) {
	stmt := spanner.Statement{
		SQL:    "SELECT status, COUNT(*) FROM outbox_events WHERE " + expiredWhere + " GROUP BY status",
		Params: expiredParams(completedBefore, failedBefore),
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var counts contracts.RetentionCount
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return counts, fmt.Errorf("failed to count expired events: %w", err)
		}
		var status string
		var n int64
		if err := row.Columns(&status, &n); err != nil {
			return counts, fmt.Errorf("failed to parse count row: %w", err)
		}
		switch status {
		case m_outbox.StatusCompleted:
			counts.Completed = n
		case m_outbox.StatusFailed:
			counts.Failed = n
		}
	}
	return counts, nil
}

func (r *OutboxRepo) DeleteExpired(ctx context.Context, completedBefore, failedBefore time.Time) (int64, error) {
	stmt := spanner.Statement{
		SQL:    "DELETE FROM outbox_events WHERE " + expiredWhere,
		Params: expiredParams(completedBefore, failedBefore),
	}

	var deleted int64
	_, err := r.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		n, err := txn.Update(ctx, stmt)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired events: %w", err)
	}
	return deleted, nil
}

func expiredParams(completedBefore, failedBefore time.Time) map[string]interface{} {
	return map[string]interface{}{
		"completed":       m_outbox.StatusCompleted,
		"failed":          m_outbox.StatusFailed,
		"completedCutoff": completedBefore,
		"failedCutoff":    failedBefore,
	}
}
