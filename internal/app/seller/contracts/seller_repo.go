package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/aptmart-service/internal/app/seller/domain"
)

// SellerRepository returns mutations for sellers and loads them by ID or phone.
type SellerRepository interface {
	InsertMut(seller *domain.Seller) *spanner.Mutation
	UpdateMut(seller *domain.Seller) *spanner.Mutation

	GetByID(ctx context.Context, sellerID string) (*domain.Seller, error)

	// GetByPhone returns domain.ErrSellerNotFound when no seller uses phone.
	GetByPhone(ctx context.Context, phone string) (*domain.Seller, error)
}
