package seller_dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogcontracts "github.com/light-bringer/aptmart-service/internal/app/catalog/contracts"
	catalogdomain "github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	"github.com/light-bringer/aptmart-service/internal/app/seller/domain"
	"github.com/light-bringer/aptmart-service/internal/app/seller/sellertest"
	shopcontracts "github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
)

type shops struct {
	shopcontracts.ReadModel
	bySeller map[string][]*shopcontracts.ShopDTO
}

func (s shops) ShopsBySeller(_ context.Context, sellerID string) ([]*shopcontracts.ShopDTO, error) {
	return s.bySeller[sellerID], nil
}

type listings struct {
	catalogcontracts.ReadModel
	calls int
}

func (l *listings) ListByShop(_ context.Context, shopID string, kind catalogdomain.Kind, _ bool) ([]*catalogcontracts.ListingDTO, error) {
	l.calls++
	return []*catalogcontracts.ListingDTO{{ID: "l-1", ShopID: shopID, Kind: string(kind)}}, nil
}

func setup() (*Query, *listings) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	sellers := sellertest.NewFakeRepo(
		domain.ReconstructSeller("decided", "1", "h", "Ravi", domain.TypeServices, now, now),
		domain.ReconstructSeller("undecided", "2", "h", "Asha", domain.TypeNone, now, now),
		domain.ReconstructSeller("shopless", "3", "h", "Vik", domain.TypeProducts, now, now),
	)
	l := &listings{}
	return NewQuery(sellers, shops{bySeller: map[string][]*shopcontracts.ShopDTO{
		"decided":   {{ID: "shop-1"}},
		"undecided": {{ID: "shop-2"}},
	}}, l), l
}

func TestExecute_ListsChosenKind(t *testing.T) {
	q, _ := setup()

	got, err := q.Execute(context.Background(), "decided")
	require.NoError(t, err)

	assert.False(t, got.NeedsType)
	assert.Equal(t, "shop-1", got.Shop.ID)
	require.Len(t, got.Listings, 1)
	assert.Equal(t, "service", got.Listings[0].Kind)
}

func TestExecute_NeedsType(t *testing.T) {
	q, l := setup()

	got, err := q.Execute(context.Background(), "undecided")
	require.NoError(t, err)

	assert.True(t, got.NeedsType)
	assert.NotNil(t, got.Shop)
	assert.Empty(t, got.Listings)
	assert.Zero(t, l.calls)
}

func TestExecute_NoShop(t *testing.T) {
	q, _ := setup()

	got, err := q.Execute(context.Background(), "shopless")
	require.NoError(t, err)
	assert.Nil(t, got.Shop)
	assert.NotNil(t, got.Listings)
}

func TestExecute_UnknownSeller(t *testing.T) {
	q, _ := setup()

	_, err := q.Execute(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrSellerNotFound)
}
