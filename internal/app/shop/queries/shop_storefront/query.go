package shop_storefront

import (
	"context"

	catalogcontracts "github.com/light-bringer/aptmart-service/internal/app/catalog/contracts"
	catalogdomain "github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	"github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/shop/domain"
)

// Result is a shop page as a resident of one apartment sees it.
type Result struct {
	Shop     *contracts.ShopDTO             `json:"shop"`
	Kind     string                         `json:"kind"`
	Listings []*catalogcontracts.ListingDTO `json:"listings"`
}

// Query loads an active shop serving an apartment with its available listings.
type Query struct {
	shops    contracts.ReadModel
	listings catalogcontracts.ReadModel
}

// NewQuery creates a new shop storefront query.
func NewQuery(shops contracts.ReadModel, listings catalogcontracts.ReadModel) *Query {
	return &Query{shops: shops, listings: listings}
}

// Execute returns domain.ErrShopNotFound for inactive shops and for shops outside the apartment.
func (q *Query) Execute(ctx context.Context, apartmentID, shopID string) (*Result, error) {
	shop, err := q.shops.GetShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if !shop.Active || !covers(shop, apartmentID) {
		return nil, domain.ErrShopNotFound
	}

	kind := catalogdomain.KindProduct
	if shop.Offering == string(domain.OfferingServices) {
		kind = catalogdomain.KindService
	}
	listings, err := q.listings.ListByShop(ctx, shop.ID, kind, true)
	if err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []*catalogcontracts.ListingDTO{}
	}
	return &Result{Shop: shop, Kind: string(kind), Listings: listings}, nil
}

func covers(shop *contracts.ShopDTO, apartmentID string) bool {
	for _, a := range shop.Apartments {
		if a.ID == apartmentID {
			return true
		}
	}
	return false
}
