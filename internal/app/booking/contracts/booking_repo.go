package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/aptmart-service/internal/app/booking/domain"
)

// BookingRepository returns mutations for bookings.
type BookingRepository interface {
	InsertMut(booking *domain.Booking) *spanner.Mutation
	StatusMut(booking *domain.Booking) *spanner.Mutation

	GetByID(ctx context.Context, bookingID string) (*domain.Booking, error)
}
