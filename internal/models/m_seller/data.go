package m_seller

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the sellers table.
type Data struct {
	SellerID            string             `spanner:"seller_id"`
	Phone               string             `spanner:"phone"`
	PasswordHash        string             `spanner:"password_hash"`
	ServiceProviderName string             `spanner:"service_provider_name"`
	SellerType          spanner.NullString `spanner:"seller_type"`
	CreatedAt           time.Time          `spanner:"created_at"`
	UpdatedAt           time.Time          `spanner:"updated_at"`
}
