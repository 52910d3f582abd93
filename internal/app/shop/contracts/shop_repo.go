package contracts

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/aptmart-service/internal/app/shop/domain"
)

// ShopRepository returns mutations for the shop aggregate and loads it with its coverage.
type ShopRepository interface {
	InsertMut(shop *domain.Shop) *spanner.Mutation

	// UpdateMut persists dirty fields and bumps the version. Nil when nothing changed.
	UpdateMut(shop *domain.Shop) *spanner.Mutation

	// CoverageMuts deletes every coverage row of the shop and inserts its current set.
	CoverageMuts(shop *domain.Shop) []*spanner.Mutation

	// DeleteMuts removes the coverage rows and the shop. Listings cascade.
	DeleteMuts(shopID string) []*spanner.Mutation

	GetByID(ctx context.Context, shopID string) (*domain.Shop, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*domain.Shop, error)

	// MissingApartments returns the IDs in apartmentIDs that do not exist.
	MissingApartments(ctx context.Context, apartmentIDs []string) ([]string, error)
}

// CheckApartments fails with domain.ErrUnknownApartment when any ID does not exist.
func CheckApartments(ctx context.Context, repo ShopRepository, apartmentIDs []string) error {
	missing, err := repo.MissingApartments(ctx, apartmentIDs)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", domain.ErrUnknownApartment, missing)
	}
	return nil
}
