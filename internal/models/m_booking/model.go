package m_booking

import "cloud.google.com/go/spanner"

// Model builds mutations for the bookings table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates an insert mutation.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns, []interface{}{
		data.BookingID,
		data.Kind,
		data.ShopID,
		data.ShopName,
		data.ServiceID,
		data.ServiceName,
		data.CustomerName,
		data.CustomerPhone,
		data.ApartmentID,
		data.ApartmentName,
		data.FlatNumber,
		data.DoorNumber,
		data.Quantity,
		data.Notes,
		data.CarModel,
		data.Items,
		&data.Total,
		data.BookingStatus,
		spanner.CommitTimestamp,
		spanner.CommitTimestamp,
	})
}

// StatusMut updates booking_status.
func (m *Model) StatusMut(bookingID, status string) *spanner.Mutation {
	return spanner.Update(TableName,
		[]string{BookingID, BookingStatus, UpdatedAt},
		[]interface{}{bookingID, status, spanner.CommitTimestamp},
	)
}
