// Package events defines the domain event contract shared by all aggregates and the
// helper that stages recorded events as outbox rows inside a commit plan.
package events

import (
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
)

// Event is implemented by every domain event.
type Event interface {
	EventType() string
	AggregateID() string
}

// Recorder collects events raised by an aggregate. Embed it in aggregates.
type Recorder struct {
	events []Event
}

// Record appends an event.
func (r *Recorder) Record(e Event) {
	r.events = append(r.events, e)
}

// DomainEvents returns the recorded events.
func (r *Recorder) DomainEvents() []Event {
	return r.events
}

// ClearEvents drops recorded events.
func (r *Recorder) ClearEvents() {
	r.events = nil
}

// Writer turns a serialized event into an outbox insert mutation.
type Writer interface {
	InsertMut(e Event, payload string) *spanner.Mutation
}

// Stage serializes evts and adds one outbox mutation per event to plan.
func Stage(plan *committer.CommitPlan, w Writer, evts []Event) error {
	for _, e := range evts {
		payload, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to serialize event %s: %w", e.EventType(), err)
		}
		plan.Add(w.InsertMut(e, string(payload)))
	}
	return nil
}
