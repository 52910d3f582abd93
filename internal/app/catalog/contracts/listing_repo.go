package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
)

// ListingRepository returns mutations for listings. The kind picks the products or services table.
type ListingRepository interface {
	InsertMut(listing *domain.Listing) *spanner.Mutation

	// UpdateMut persists dirty fields and bumps the version. Nil when nothing changed.
	UpdateMut(listing *domain.Listing) *spanner.Mutation

	DeleteMut(kind domain.Kind, listingID string) *spanner.Mutation

	GetByID(ctx context.Context, kind domain.Kind, listingID string) (*domain.Listing, error)
}

// ShopResolver finds the shop a seller manages listings of the given kind in.
type ShopResolver interface {
	// ShopFor fails when the seller has not chosen kind as its type or owns no shop.
	ShopFor(ctx context.Context, sellerID string, kind domain.Kind) (string, error)
}
