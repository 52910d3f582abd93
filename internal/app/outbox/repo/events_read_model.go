package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/aptmart-service/internal/app/outbox/contracts"
	"github.com/light-bringer/aptmart-service/internal/models/m_outbox"
	"github.com/light-bringer/aptmart-service/internal/pkg/query"
)

// EventsReadModel implements contracts.EventsReadModel for Spanner.
type EventsReadModel struct {
	client *spanner.Client
}

// NewEventsReadModel creates a new EventsReadModel.
func NewEventsReadModel(client *spanner.Client) *EventsReadModel {
	return &EventsReadModel{client: client}
}

// ListEvents returns events newest first.
func (r *EventsReadModel) ListEvents(ctx context.Context, filter contracts.EventFilter) ([]*contracts.Event, error) {
	b := query.From(m_outbox.TableName).Select(m_outbox.Columns...)
	if filter.EventType != "" {
		b = b.Where(query.Eq(m_outbox.EventType, filter.EventType))
	}
	if filter.AggregateID != "" {
		b = b.Where(query.Eq(m_outbox.AggregateID, filter.AggregateID))
	}
	if filter.Status != "" {
		b = b.Where(query.Eq(m_outbox.Status, filter.Status))
	}
	stmt := b.OrderBy(m_outbox.CreatedAt, query.Desc).Limit(filter.Limit).Build()

	return scanEvents(r.client.Single().Query(ctx, stmt))
}

func scanEvents(iter *spanner.RowIterator) ([]*contracts.Event, error) {
	defer iter.Stop()

	out := make([]*contracts.Event, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate events: %w", err)
		}

		var data m_outbox.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		evt, err := toEvent(&data)
		if err != nil {
			return nil, err
		}
		out = append(out, evt)
	}
	return out, nil
}

func toEvent(data *m_outbox.Data) (*contracts.Event, error) {
	evt := &contracts.Event{
		EventID:      data.EventID,
		EventType:    data.EventType,
		AggregateID:  data.AggregateID,
		Status:       data.Status,
		CreatedAt:    data.CreatedAt,
		RetryCount:   data.RetryCount,
		ErrorMessage: data.ErrorMessage.StringVal,
	}
	if data.ProcessedAt.Valid {
		t := data.ProcessedAt.Time
		evt.ProcessedAt = &t
	}
	if data.Payload.Valid {
		raw, err := json.Marshal(data.Payload.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode payload of %s: %w", data.EventID, err)
		}
		evt.Payload = raw
	}
	return evt, nil
}

// jsonValue decodes a serialized payload so Spanner stores it as a JSON document.
func jsonValue(payload string) interface{} {
	var v interface{}
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return payload
	}
	return v
}
