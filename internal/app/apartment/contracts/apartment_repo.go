package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/aptmart-service/internal/app/apartment/domain"
)

// ApartmentRepository returns mutations for the apartment aggregate and loads it back.
type ApartmentRepository interface {
	InsertMut(apartment *domain.Apartment) *spanner.Mutation

	// UpdateMut persists dirty fields and bumps the version. Nil when nothing changed.
	UpdateMut(apartment *domain.Apartment) *spanner.Mutation

	// DeleteMuts removes the apartment and its coverage rows for the given shops.
	DeleteMuts(apartmentID string, shopIDs []string) []*spanner.Mutation

	GetByID(ctx context.Context, apartmentID string) (*domain.Apartment, error)

	// CoveringShopIDs lists the shops linked to an apartment.
	CoveringShopIDs(ctx context.Context, apartmentID string) ([]string, error)
}
