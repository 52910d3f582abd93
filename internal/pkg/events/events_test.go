package events

import (
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
)

type shopActivated struct {
	ShopID string `json:"shop_id"`
}

func (e shopActivated) EventType() string   { return "shop.activated" }
func (e shopActivated) AggregateID() string { return e.ShopID }

type captureWriter struct {
	payloads []string
}

func (w *captureWriter) InsertMut(e Event, payload string) *spanner.Mutation {
	w.payloads = append(w.payloads, payload)
	return spanner.Insert("outbox_events", []string{"event_id"}, []interface{}{e.AggregateID()})
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Record(shopActivated{ShopID: "s1"})
	r.Record(shopActivated{ShopID: "s2"})
	assert.Len(t, r.DomainEvents(), 2)

	r.ClearEvents()
	assert.Empty(t, r.DomainEvents())
}

func TestStage(t *testing.T) {
	plan := committer.NewPlan()
	w := &captureWriter{}

	err := Stage(plan, w, []Event{shopActivated{ShopID: "s1"}})
	require.NoError(t, err)

	assert.Equal(t, 1, plan.Count())
	assert.Equal(t, []string{`{"shop_id":"s1"}`}, w.payloads)
}
