package domain

import "time"

// BookingPlacedEvent is emitted for every new order or service booking.
type BookingPlacedEvent struct {
	BookingID   string    `json:"booking_id"`
	Kind        string    `json:"kind"`
	ShopID      string    `json:"shop_id"`
	ApartmentID string    `json:"apartment_id"`
	Total       string    `json:"total"`
	PlacedAt    time.Time `json:"placed_at"`
}

func (e *BookingPlacedEvent) EventType() string   { return "booking.placed" }
func (e *BookingPlacedEvent) AggregateID() string { return e.BookingID }

// BookingStatusChangedEvent is emitted when an admin moves a booking to another status.
type BookingStatusChangedEvent struct {
	BookingID string    `json:"booking_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	ChangedAt time.Time `json:"changed_at"`
}

func (e *BookingStatusChangedEvent) EventType() string   { return "booking.status_changed" }
func (e *BookingStatusChangedEvent) AggregateID() string { return e.BookingID }
