package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/aptmart-service/internal/app/booking/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/booking/domain"
	"github.com/light-bringer/aptmart-service/internal/models/m_booking"
	"github.com/light-bringer/aptmart-service/internal/pkg/money"
	"github.com/light-bringer/aptmart-service/internal/pkg/query"
)

const bookingsWithServices = "bookings b LEFT JOIN services sv ON sv.service_id = b.service_id"

// ReadModelImpl implements the booking ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{client: client}
}

func (rm *ReadModelImpl) ListBookings(ctx context.Context, filter contracts.Filter) ([]*contracts.BookingDTO, error) {
	cols := make([]string, 0, len(m_booking.Columns)+1)
	for _, c := range m_booking.Columns {
		cols = append(cols, "b."+c)
	}
	cols = append(cols, "sv.price AS service_price")

	b := query.From(bookingsWithServices).
		Select(cols...).
		OrderBy("b."+m_booking.CreatedAt, query.Desc)
	if filter.ShopID != "" {
		b = b.Where(query.Eq("b."+m_booking.ShopID, filter.ShopID))
	}
	if filter.Status != "" {
		b = b.Where(query.Eq("b."+m_booking.BookingStatus, filter.Status))
	}
	if filter.Limit > 0 {
		b = b.Limit(filter.Limit)
	}

	iter := rm.client.Single().Query(ctx, b.Build())
	defer iter.Stop()

	bookings := make([]*contracts.BookingDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate bookings: %w", err)
		}
		dto, err := scanBooking(row)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, dto)
	}
	return bookings, nil
}

func scanBooking(row *spanner.Row) (*contracts.BookingDTO, error) {
	var (
		d            m_booking.Data
		servicePrice spanner.NullNumeric
	)
	err := row.Columns(
		&d.BookingID, &d.Kind, &d.ShopID, &d.ShopName, &d.ServiceID, &d.ServiceName,
		&d.CustomerName, &d.CustomerPhone, &d.ApartmentID, &d.ApartmentName, &d.FlatNumber,
		&d.DoorNumber, &d.Quantity, &d.Notes, &d.CarModel, &d.Items, &d.Total,
		&d.BookingStatus, &d.CreatedAt, &d.UpdatedAt, &servicePrice,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse booking: %w", err)
	}

	dto := &contracts.BookingDTO{
		ID:            d.BookingID,
		Kind:          d.Kind,
		ShopID:        d.ShopID,
		ShopName:      d.ShopName,
		ServiceID:     d.ServiceID.StringVal,
		ServiceName:   d.ServiceName.StringVal,
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		ApartmentID:   d.ApartmentID,
		ApartmentName: d.ApartmentName,
		FlatNumber:    d.FlatNumber.StringVal,
		DoorNumber:    d.DoorNumber.StringVal,
		Quantity:      d.Quantity,
		Notes:         d.Notes.StringVal,
		CarModel:      d.CarModel.StringVal,
		Items:         []domain.Line{},
		Total:         money.FromRat(&d.Total),
		Status:        d.BookingStatus,
		CreatedAt:     d.CreatedAt,
	}
	if servicePrice.Valid {
		dto.ServicePrice = money.FromRat(&servicePrice.Numeric)
	}
	if d.Items.Valid {
		raw, err := json.Marshal(d.Items.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode booking items: %w", err)
		}
		if err := json.Unmarshal(raw, &dto.Items); err != nil {
			return nil, fmt.Errorf("failed to decode booking items: %w", err)
		}
	}
	return dto, nil
}
