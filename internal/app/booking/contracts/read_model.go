package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/aptmart-service/internal/app/booking/domain"
	"github.com/light-bringer/aptmart-service/internal/pkg/money"
)

// BookingDTO is a booking as listed in the admin console.
type BookingDTO struct {
	ID            string        `json:"id"`
	Kind          string        `json:"kind"`
	ShopID        string        `json:"shop_id"`
	ShopName      string        `json:"shop_name"`
	ServiceID     string        `json:"service_id,omitempty"`
	ServiceName   string        `json:"service_name,omitempty"`
	ServicePrice  *money.Money  `json:"service_price,omitempty"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	ApartmentID   string        `json:"apartment_id"`
	ApartmentName string        `json:"apartment_name"`
	FlatNumber    string        `json:"flat_number"`
	DoorNumber    string        `json:"door_number"`
	Quantity      int64         `json:"quantity"`
	Notes         string        `json:"notes,omitempty"`
	CarModel      string        `json:"car_model,omitempty"`
	Items         []domain.Line `json:"items"`
	Total         *money.Money  `json:"total"`
	Status        string        `json:"booking_status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Filter narrows ListBookings. Empty fields match everything.
type Filter struct {
	ShopID string
	Status string
	Limit  int64
}

// ReadModel serves booking queries.
type ReadModel interface {
	// ListBookings returns bookings newest first.
	ListBookings(ctx context.Context, filter Filter) ([]*BookingDTO, error)
}
