package list_bookings

import (
	"context"

	"github.com/light-bringer/aptmart-service/internal/app/booking/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/booking/domain"
)

const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// Query lists bookings for the admin console.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list bookings query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute validates the status filter and clamps the limit.
func (q *Query) Execute(ctx context.Context, filter contracts.Filter) ([]*contracts.BookingDTO, error) {
	if filter.Status != "" {
		s, err := domain.ParseStatus(filter.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = string(s)
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultLimit
	case filter.Limit > MaxLimit:
		filter.Limit = MaxLimit
	}

	bookings, err := q.readModel.ListBookings(ctx, filter)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []*contracts.BookingDTO{}
	}
	return bookings, nil
}
