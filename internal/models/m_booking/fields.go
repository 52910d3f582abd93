package m_booking

// Field name constants for the bookings table.
const (
	TableName = "bookings"

	BookingID     = "booking_id"
	Kind          = "kind"
	ShopID        = "shop_id"
	ShopName      = "shop_name"
	ServiceID     = "service_id"
	ServiceName   = "service_name"
	CustomerName  = "customer_name"
	CustomerPhone = "customer_phone"
	ApartmentID   = "apartment_id"
	ApartmentName = "apartment_name"
	FlatNumber    = "flat_number"
	DoorNumber    = "door_number"
	Quantity      = "quantity"
	Notes         = "notes"
	CarModel      = "car_model"
	Items         = "items"
	Total         = "total"
	BookingStatus = "booking_status"
	CreatedAt     = "created_at"
	UpdatedAt     = "updated_at"
)

// Columns lists every column in Data order.
var Columns = []string{
	BookingID, Kind, ShopID, ShopName, ServiceID, ServiceName, CustomerName, CustomerPhone,
	ApartmentID, ApartmentName, FlatNumber, DoorNumber, Quantity, Notes, CarModel, Items, Total,
	BookingStatus, CreatedAt, UpdatedAt,
}
