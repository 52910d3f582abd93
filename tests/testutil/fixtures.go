package testutil

import (
	"context"
	"math/big"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/aptmart-service/internal/models/m_apartment"
	"github.com/light-bringer/aptmart-service/internal/models/m_outbox"
	"github.com/light-bringer/aptmart-service/internal/models/m_product"
	"github.com/light-bringer/aptmart-service/internal/models/m_service"
	"github.com/light-bringer/aptmart-service/internal/models/m_shop"
	"github.com/light-bringer/aptmart-service/internal/models/m_shop_apartment"
)

// ShopFixture describes a shop row for CreateTestShop.
type ShopFixture struct {
	Name         string
	Category     string
	Offering     string
	Active       bool
	ApartmentIDs []string
}

// CreateTestApartment creates an apartment directly in the database.
func CreateTestApartment(t *testing.T, client *spanner.Client, name string) string {
	t.Helper()

	id := uuid.New().String()
	mut := m_apartment.NewModel().InsertMut(&m_apartment.Data{
		ApartmentID: id,
		Name:        name,
		Address:     "Sector 12, Mumbai",
		TotalFlats:  100,
		Version:     1,
	})
	_, err := client.Apply(context.Background(), []*spanner.Mutation{mut})
	require.NoError(t, err, "failed to create test apartment")

	return id
}

// CreateTestShop creates an admin-owned shop and its apartment links.
func CreateTestShop(t *testing.T, client *spanner.Client, f ShopFixture) string {
	t.Helper()

	if f.Category == "" {
		f.Category = "Grocery"
	}
	if f.Offering == "" {
		f.Offering = "products"
	}

	id := uuid.New().String()
	muts := []*spanner.Mutation{
		m_shop.NewModel().InsertMut(&m_shop.Data{
			ShopID:        id,
			Name:          f.Name,
			Description:   spanner.NullString{StringVal: f.Name + " description", Valid: true},
			Category:      f.Category,
			Phone:         spanner.NullString{StringVal: "+919876543210", Valid: true},
			Offering:      spanner.NullString{StringVal: f.Offering, Valid: true},
			AvailableDays: []string{},
			IsActive:      f.Active,
			Version:       1,
		}),
	}
	links := m_shop_apartment.NewModel()
	for _, aptID := range f.ApartmentIDs {
		muts = append(muts, links.InsertMut(id, aptID))
	}

	_, err := client.Apply(context.Background(), muts)
	require.NoError(t, err, "failed to create test shop")

	return id
}

// CreateTestProduct creates an available product priced at price rupees.
func CreateTestProduct(t *testing.T, client *spanner.Client, shopID, name string, price int64) string {
	t.Helper()

	id := uuid.New().String()
	mut := m_product.NewModel().InsertMut(&m_product.Data{
		ProductID:   id,
		ShopID:      shopID,
		Name:        name,
		Price:       *new(big.Rat).SetInt64(price),
		IsAvailable: true,
		Version:     1,
	})
	_, err := client.Apply(context.Background(), []*spanner.Mutation{mut})
	require.NoError(t, err, "failed to create test product")

	return id
}

// CreateTestService creates a bookable service.
func CreateTestService(t *testing.T, client *spanner.Client, shopID, name string, price int64, available bool) string {
	t.Helper()

	id := uuid.New().String()
	mut := m_service.NewModel().InsertMut(&m_service.Data{
		ServiceID:   id,
		ShopID:      shopID,
		Name:        name,
		Price:       *new(big.Rat).SetInt64(price),
		IsAvailable: available,
		Version:     1,
	})
	_, err := client.Apply(context.Background(), []*spanner.Mutation{mut})
	require.NoError(t, err, "failed to create test service")

	return id
}

// CreateTestOutboxEvent creates a pending outbox event.
func CreateTestOutboxEvent(t *testing.T, client *spanner.Client, eventType string, aggregateID string) string {
	t.Helper()

	eventID := uuid.New().String()
	mut := m_outbox.NewModel().InsertMut(&m_outbox.Data{
		EventID:     eventID,
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     spanner.NullJSON{Value: map[string]string{"test": "data"}, Valid: true},
		Status:      m_outbox.StatusPending,
	})
	_, err := client.Apply(context.Background(), []*spanner.Mutation{mut})
	require.NoError(t, err, "failed to create test outbox event")

	return eventID
}

// AssertOutboxEvent verifies an outbox event exists with the given event type.
func AssertOutboxEvent(t *testing.T, client *spanner.Client, eventType string) {
	t.Helper()

	stmt := spanner.Statement{
		SQL:    "SELECT event_id FROM outbox_events WHERE event_type = @eventType",
		Params: map[string]interface{}{"eventType": eventType},
	}

	iter := client.Single().Query(context.Background(), stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "outbox event not found for type: %s", eventType)
	require.NotNil(t, row, "outbox event not found for type: %s", eventType)
}

// AssertOutboxEventCount verifies the count of outbox events.
func AssertOutboxEventCount(t *testing.T, client *spanner.Client, expectedCount int) {
	t.Helper()
	AssertRowCount(t, client, m_outbox.TableName, expectedCount)
}
