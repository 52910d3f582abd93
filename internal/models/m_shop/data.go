package m_shop

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the shops table.
type Data struct {
	ShopID              string             `spanner:"shop_id"`
	SellerID            spanner.NullString `spanner:"seller_id"`
	Name                string             `spanner:"name"`
	Description         spanner.NullString `spanner:"description"`
	Category            string             `spanner:"category"`
	Phone               spanner.NullString `spanner:"phone"`
	Offering            spanner.NullString `spanner:"offering"`
	ServiceProviderName spanner.NullString `spanner:"service_provider_name"`
	AvailableDays       []string           `spanner:"available_days"`
	AvailableTimeStart  spanner.NullString `spanner:"available_time_start"`
	AvailableTimeEnd    spanner.NullString `spanner:"available_time_end"`
	IsActive            bool               `spanner:"is_active"`
	Version             int64              `spanner:"version"`
	CreatedAt           time.Time          `spanner:"created_at"`
	UpdatedAt           time.Time          `spanner:"updated_at"`
}
