package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/aptmart-service/internal/app/booking/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/booking/domain"
	"github.com/light-bringer/aptmart-service/internal/models/m_booking"
)

// BookingRepo implements BookingRepository for Spanner.
type BookingRepo struct {
	client *spanner.Client
	model  *m_booking.Model
}

// NewBookingRepo creates a new BookingRepo.
func NewBookingRepo(client *spanner.Client) contracts.BookingRepository {
	return &BookingRepo{
		client: client,
		model:  m_booking.NewModel(),
	}
}

func (r *BookingRepo) InsertMut(b *domain.Booking) *spanner.Mutation {
	data := &m_booking.Data{
		BookingID:     b.ID(),
		Kind:          string(b.Kind()),
		ShopID:        b.ShopID(),
		ShopName:      b.ShopName(),
		CustomerName:  b.Customer().Name,
		CustomerPhone: b.Customer().Phone,
		ApartmentID:   b.Address().ApartmentID,
		ApartmentName: b.Address().ApartmentName,
		FlatNumber:    nullString(b.Address().FlatNumber),
		DoorNumber:    nullString(b.Address().DoorNumber),
		Quantity:      b.Quantity(),
		Notes:         nullString(b.Notes()),
		CarModel:      nullString(b.CarModel()),
		Total:         b.Total().Numeric(),
		BookingStatus: string(b.Status()),
	}
	if s := b.Service(); s != nil {
		data.ServiceID = nullString(s.ID)
		data.ServiceName = nullString(s.Name)
	}
	if items := b.Items(); len(items) > 0 {
		data.Items = spanner.NullJSON{Value: items, Valid: true}
	}
	return r.model.InsertMut(data)
}

func (r *BookingRepo) StatusMut(b *domain.Booking) *spanner.Mutation {
	return r.model.StatusMut(b.ID(), string(b.Status()))
}

func (r *BookingRepo) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	cols := []string{m_booking.BookingID, m_booking.Kind, m_booking.ShopID, m_booking.BookingStatus, m_booking.CreatedAt, m_booking.UpdatedAt}
	row, err := r.client.Single().ReadRow(ctx, m_booking.TableName, spanner.Key{bookingID}, cols)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to read booking: %w", err)
	}

	var data m_booking.Data
	if err := row.Columns(&data.BookingID, &data.Kind, &data.ShopID, &data.BookingStatus, &data.CreatedAt, &data.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse booking: %w", err)
	}
	return domain.ReconstructBooking(
		data.BookingID,
		domain.Kind(data.Kind),
		data.ShopID,
		domain.Status(data.BookingStatus),
		data.CreatedAt,
		data.UpdatedAt,
	), nil
}

func nullString(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: s != ""}
}
