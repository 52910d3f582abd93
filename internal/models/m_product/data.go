package m_product

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the products table.
type Data struct {
	ProductID   string             `spanner:"product_id"`
	ShopID      string             `spanner:"shop_id"`
	Name        string             `spanner:"name"`
	Description spanner.NullString `spanner:"description"`
	Price       big.Rat            `spanner:"price"`
	ImageURL    spanner.NullString `spanner:"image_url"`
	IsAvailable bool               `spanner:"is_available"`
	Version     int64              `spanner:"version"`
	CreatedAt   time.Time          `spanner:"created_at"`
	UpdatedAt   time.Time          `spanner:"updated_at"`
}
