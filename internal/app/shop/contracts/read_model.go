package contracts

import (
	"context"
	"time"
)

// ApartmentRef is an apartment as shown next to a shop.
type ApartmentRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ShopDTO is the read-side view of a shop.
type ShopDTO struct {
	ID            string         `json:"id"`
	SellerID      string         `json:"seller_id,omitempty"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Category      string         `json:"category"`
	Phone         string         `json:"phone"`
	Offering      string         `json:"offering"`
	ProviderName  string         `json:"service_provider_name,omitempty"`
	SellerType    string         `json:"seller_type,omitempty"`
	AvailableDays []string       `json:"available_days"`
	AvailableFrom string         `json:"available_time_start,omitempty"`
	AvailableTo   string         `json:"available_time_end,omitempty"`
	Active        bool           `json:"is_active"`
	Apartments    []ApartmentRef `json:"apartments"`
	Version       int64          `json:"version"`
	CreatedAt     time.Time      `json:"created_at"`
}

// StorefrontDTO is what a resident of an apartment sees.
type StorefrontDTO struct {
	Apartment    ApartmentRef `json:"apartment"`
	ProductShops []*ShopDTO   `json:"product_shops"`
	ServiceShops []*ShopDTO   `json:"service_shops"`
}

// OverviewDTO holds admin dashboard counters.
type OverviewDTO struct {
	Apartments   int64 `json:"apartments"`
	Shops        int64 `json:"shops"`
	PendingShops int64 `json:"pending_shops"`
	Bookings     int64 `json:"bookings"`
}

// ReadModel serves shop queries.
type ReadModel interface {
	// ListShops returns every shop newest first with seller and coverage details.
	ListShops(ctx context.Context) ([]*ShopDTO, error)

	// ActiveShopsForApartment returns the apartment and its covering active shops ordered by name.
	ActiveShopsForApartment(ctx context.Context, apartmentID string) (ApartmentRef, []*ShopDTO, error)

	GetShop(ctx context.Context, shopID string) (*ShopDTO, error)

	// ShopsBySeller returns the seller's shops oldest first.
	ShopsBySeller(ctx context.Context, sellerID string) ([]*ShopDTO, error)

	Overview(ctx context.Context) (*OverviewDTO, error)
}
