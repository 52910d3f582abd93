package apartment_storefront

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aptdomain "github.com/light-bringer/aptmart-service/internal/app/apartment/domain"
	outboxcontracts "github.com/light-bringer/aptmart-service/internal/app/outbox/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
	"github.com/light-bringer/aptmart-service/internal/pkg/cache"
	"github.com/light-bringer/aptmart-service/internal/pkg/logging"
)

type stubReadModel struct {
	contracts.ReadModel
	calls int
}

func (s *stubReadModel) ActiveShopsForApartment(_ context.Context, apartmentID string) (contracts.ApartmentRef, []*contracts.ShopDTO, error) {
	s.calls++
	if apartmentID != "apt-1" {
		return contracts.ApartmentRef{}, nil, aptdomain.ErrApartmentNotFound
	}
	return contracts.ApartmentRef{ID: "apt-1", Name: "Skyline Residences"}, []*contracts.ShopDTO{
		{ID: "shop-1", Name: "CoolAir", Offering: "services"},
		{ID: "shop-2", Name: "Fresh Mart", Offering: "products"},
		{ID: "shop-3", Name: "Legacy Store"},
	}, nil
}

type lookups struct{ hits, misses int }

func (l *lookups) CacheLookup(hit bool) {
	if hit {
		l.hits++
	} else {
		l.misses++
	}
}

func TestExecute_SplitsByOffering(t *testing.T) {
	rm := &stubReadModel{}
	q := NewQuery(rm, cache.Nop{}, 0, &lookups{}, logging.NewNop())

	got, err := q.Execute(context.Background(), "apt-1")
	require.NoError(t, err)

	assert.Equal(t, "Skyline Residences", got.Apartment.Name)
	require.Len(t, got.ServiceShops, 1)
	assert.Equal(t, "CoolAir", got.ServiceShops[0].Name)
	require.Len(t, got.ProductShops, 2)
	assert.Equal(t, "Fresh Mart", got.ProductShops[0].Name)
}

func TestExecute_ServesFromCache(t *testing.T) {
	rm := &stubReadModel{}
	l := &lookups{}
	q := NewQuery(rm, cache.NewMemory(), 0, l, logging.NewNop())

	_, err := q.Execute(context.Background(), "apt-1")
	require.NoError(t, err)
	got, err := q.Execute(context.Background(), "apt-1")
	require.NoError(t, err)

	assert.Equal(t, 1, rm.calls)
	assert.Equal(t, 1, l.hits)
	assert.Equal(t, 1, l.misses)
	assert.Len(t, got.ProductShops, 2)
}

func TestExecute_UnknownApartment(t *testing.T) {
	c := cache.NewMemory()
	q := NewQuery(&stubReadModel{}, c, 0, &lookups{}, logging.NewNop())

	_, err := q.Execute(context.Background(), "apt-404")

	assert.ErrorIs(t, err, aptdomain.ErrApartmentNotFound)
	assert.Zero(t, c.Len())
}

func TestSplit_EmptyIsNotNil(t *testing.T) {
	got := Split(contracts.ApartmentRef{ID: "apt-1"}, nil)
	assert.NotNil(t, got.ProductShops)
	assert.NotNil(t, got.ServiceShops)
}

func TestInvalidator_DropsNamedApartments(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory()
	require.NoError(t, c.Set(ctx, CacheKey("apt-1"), "x", 0))
	require.NoError(t, c.Set(ctx, CacheKey("apt-2"), "x", 0))

	payload, _ := json.Marshal(map[string]interface{}{"apartment_ids": []string{"apt-1"}})
	err := NewInvalidator(c).Publish(ctx, outboxcontracts.Notification{EventType: "shop.activated", Payload: payload})
	require.NoError(t, err)

	assert.Equal(t, 1, c.Len())
}

func TestInvalidator_IgnoresUnrelatedPayloads(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory()
	require.NoError(t, c.Set(ctx, CacheKey("apt-1"), "x", 0))

	inv := NewInvalidator(c)
	require.NoError(t, inv.Publish(ctx, outboxcontracts.Notification{EventType: "booking.placed", Payload: []byte(`{"booking_id":"b-1"}`)}))
	require.NoError(t, inv.Publish(ctx, outboxcontracts.Notification{EventType: "odd", Payload: []byte(`"text"`)}))
	require.NoError(t, inv.Publish(ctx, outboxcontracts.Notification{EventType: "empty"}))

	assert.Equal(t, 1, c.Len())
}
