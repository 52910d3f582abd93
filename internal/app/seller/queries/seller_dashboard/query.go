package seller_dashboard

import (
	"context"

	catalogcontracts "github.com/light-bringer/aptmart-service/internal/app/catalog/contracts"
	catalogdomain "github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	"github.com/light-bringer/aptmart-service/internal/app/seller/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/seller/domain"
	shopcontracts "github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
)

// SellerDTO is the signed-in seller without credentials.
type SellerDTO struct {
	ID           string `json:"id"`
	Phone        string `json:"phone"`
	ProviderName string `json:"service_provider_name"`
	Type         string `json:"seller_type"`
}

// Result is everything the seller dashboard shows.
type Result struct {
	Seller    SellerDTO                      `json:"seller"`
	Shop      *shopcontracts.ShopDTO         `json:"shop"`
	Listings  []*catalogcontracts.ListingDTO `json:"listings"`
	NeedsType bool                           `json:"needs_type"`
}

// Query assembles the seller dashboard.
type Query struct {
	sellers  contracts.SellerRepository
	shops    shopcontracts.ReadModel
	listings catalogcontracts.ReadModel
}

// NewQuery creates a new seller dashboard query.
func NewQuery(sellers contracts.SellerRepository, shops shopcontracts.ReadModel, listings catalogcontracts.ReadModel) *Query {
	return &Query{sellers: sellers, shops: shops, listings: listings}
}

// Execute lists listings of the seller's chosen type only. Shop is nil when the seller owns none.
func (q *Query) Execute(ctx context.Context, sellerID string) (*Result, error) {
	seller, err := q.sellers.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Seller: SellerDTO{
			ID:           seller.ID(),
			Phone:        seller.Phone(),
			ProviderName: seller.ProviderName(),
			Type:         string(seller.Type()),
		},
		Listings:  []*catalogcontracts.ListingDTO{},
		NeedsType: seller.NeedsType(),
	}

	shops, err := q.shops.ShopsBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if len(shops) == 0 {
		return res, nil
	}
	res.Shop = shops[0]
	if res.NeedsType {
		return res, nil
	}

	kind := catalogdomain.KindProduct
	if seller.Type() == domain.TypeServices {
		kind = catalogdomain.KindService
	}
	listings, err := q.listings.ListByShop(ctx, res.Shop.ID, kind, false)
	if err != nil {
		return nil, err
	}
	if listings != nil {
		res.Listings = listings
	}
	return res, nil
}
