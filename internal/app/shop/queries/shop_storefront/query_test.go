package shop_storefront

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogcontracts "github.com/light-bringer/aptmart-service/internal/app/catalog/contracts"
	catalogdomain "github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	"github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/shop/domain"
)

type shops struct {
	contracts.ReadModel
	byID map[string]*contracts.ShopDTO
}

func (s shops) GetShop(_ context.Context, id string) (*contracts.ShopDTO, error) {
	shop, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrShopNotFound
	}
	return shop, nil
}

type listings struct {
	catalogcontracts.ReadModel
	gotKind catalogdomain.Kind
}

func (l *listings) ListByShop(_ context.Context, shopID string, kind catalogdomain.Kind, onlyAvailable bool) ([]*catalogcontracts.ListingDTO, error) {
	l.gotKind = kind
	if !onlyAvailable {
		return nil, nil
	}
	return []*catalogcontracts.ListingDTO{{ID: "l-1", ShopID: shopID, Kind: string(kind)}}, nil
}

func setup() (*Query, *listings) {
	apt1 := []contracts.ApartmentRef{{ID: "apt-1", Name: "Green Valley"}}
	l := &listings{}
	return NewQuery(shops{byID: map[string]*contracts.ShopDTO{
		"grocer":   {ID: "grocer", Active: true, Offering: "products", Apartments: apt1},
		"mechanic": {ID: "mechanic", Active: true, Offering: "services", Apartments: apt1},
		"closed":   {ID: "closed", Active: false, Offering: "products", Apartments: apt1},
	}}, l), l
}

func TestExecute_ProductShop(t *testing.T) {
	q, l := setup()

	got, err := q.Execute(context.Background(), "apt-1", "grocer")
	require.NoError(t, err)

	assert.Equal(t, catalogdomain.KindProduct, l.gotKind)
	assert.Equal(t, "product", got.Kind)
	assert.Len(t, got.Listings, 1)
}

func TestExecute_ServiceShop(t *testing.T) {
	q, l := setup()

	got, err := q.Execute(context.Background(), "apt-1", "mechanic")
	require.NoError(t, err)
	assert.Equal(t, catalogdomain.KindService, l.gotKind)
	assert.Equal(t, "service", got.Kind)
}

func TestExecute_HiddenShops(t *testing.T) {
	q, _ := setup()

	_, err := q.Execute(context.Background(), "apt-1", "closed")
	assert.ErrorIs(t, err, domain.ErrShopNotFound)

	_, err = q.Execute(context.Background(), "apt-2", "grocer")
	assert.ErrorIs(t, err, domain.ErrShopNotFound)

	_, err = q.Execute(context.Background(), "apt-1", "missing")
	assert.ErrorIs(t, err, domain.ErrShopNotFound)
}
