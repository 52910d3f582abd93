package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	"github.com/light-bringer/aptmart-service/internal/pkg/money"
)

// ListingDTO is the read-side view of a product or service.
type ListingDTO struct {
	ID          string       `json:"id"`
	ShopID      string       `json:"shop_id"`
	Kind        string       `json:"kind"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       *money.Money `json:"price"`
	ImageURL    string       `json:"image_url,omitempty"`
	Available   bool         `json:"is_available"`
	Version     int64        `json:"version"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ReadModel serves catalog queries.
type ReadModel interface {
	// ListByShop returns the shop's listings of kind ordered by name.
	ListByShop(ctx context.Context, shopID string, kind domain.Kind, onlyAvailable bool) ([]*ListingDTO, error)

	// GetListings returns the listings of kind with the given IDs. Unknown IDs are skipped.
	GetListings(ctx context.Context, kind domain.Kind, ids []string) ([]*ListingDTO, error)
}
