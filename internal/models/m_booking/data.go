package m_booking

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the bookings table.
type Data struct {
	BookingID     string             `spanner:"booking_id"`
	Kind          string             `spanner:"kind"`
	ShopID        string             `spanner:"shop_id"`
	ShopName      string             `spanner:"shop_name"`
	ServiceID     spanner.NullString `spanner:"service_id"`
	ServiceName   spanner.NullString `spanner:"service_name"`
	CustomerName  string             `spanner:"customer_name"`
	CustomerPhone string             `spanner:"customer_phone"`
	ApartmentID   string             `spanner:"apartment_id"`
	ApartmentName string             `spanner:"apartment_name"`
	FlatNumber    spanner.NullString `spanner:"flat_number"`
	DoorNumber    spanner.NullString `spanner:"door_number"`
	Quantity      int64              `spanner:"quantity"`
	Notes         spanner.NullString `spanner:"notes"`
	CarModel      spanner.NullString `spanner:"car_model"`
	Items         spanner.NullJSON   `spanner:"items"`
	Total         big.Rat            `spanner:"total"`
	BookingStatus string             `spanner:"booking_status"`
	CreatedAt     time.Time          `spanner:"created_at"`
	UpdatedAt     time.Time          `spanner:"updated_at"`
}
