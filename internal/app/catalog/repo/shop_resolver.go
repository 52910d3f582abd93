package repo

import (
	"context"

	"github.com/light-bringer/aptmart-service/internal/app/catalog/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	sellercontracts "github.com/light-bringer/aptmart-service/internal/app/seller/contracts"
	sellerdomain "github.com/light-bringer/aptmart-service/internal/app/seller/domain"
	shopcontracts "github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
)

// SellerShopResolver resolves a seller's shop through the seller and shop repositories.
type SellerShopResolver struct {
	sellers sellercontracts.SellerRepository
	shops   shopcontracts.ShopRepository
}

// NewShopResolver creates a resolver over the seller and shop repositories.
func NewShopResolver(sellers sellercontracts.SellerRepository, shops shopcontracts.ShopRepository) contracts.ShopResolver {
	return &SellerShopResolver{sellers: sellers, shops: shops}
}

// ShopFor returns the seller's first shop. Sign-up creates exactly one.
func (r *SellerShopResolver) ShopFor(ctx context.Context, sellerID string, kind domain.Kind) (string, error) {
	seller, err := r.sellers.GetByID(ctx, sellerID)
	if err != nil {
		return "", err
	}
	if seller.NeedsType() {
		return "", sellerdomain.ErrSellerTypeNotChosen
	}
	if string(seller.Type()) != kind.Offering() {
		return "", domain.ErrKindMismatch
	}

	shops, err := r.shops.ListBySeller(ctx, sellerID)
	if err != nil {
		return "", err
	}
	if len(shops) == 0 {
		return "", sellerdomain.ErrSellerHasNoShop
	}
	return shops[0].ID(), nil
}
