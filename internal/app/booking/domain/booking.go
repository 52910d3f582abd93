package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/light-bringer/aptmart-service/internal/pkg/events"
	"github.com/light-bringer/aptmart-service/internal/pkg/money"
)

// Kind tells product orders from service bookings.
type Kind string

const (
	KindOrder   Kind = "order"
	KindService Kind = "service"
)

// Status is the admin-managed state of a booking.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ParseStatus accepts any of the four statuses, case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Customer is who placed the booking.
type Customer struct {
	Name  string
	Phone string
}

func (c Customer) validate() (Customer, error) {
	c.Name, c.Phone = strings.TrimSpace(c.Name), strings.TrimSpace(c.Phone)
	if c.Name == "" {
		return c, ErrEmptyCustomerName
	}
	if c.Phone == "" {
		return c, ErrEmptyCustomerPhone
	}
	return c, nil
}

// Address is where inside an apartment the order goes.
type Address struct {
	ApartmentID   string
	ApartmentName string
	FlatNumber    string
	DoorNumber    string
}

// Service is the booked service as priced at booking time.
type Service struct {
	ID    string
	Name  string
	Price *money.Money
}

// Booking is an order of products or a booked service.
type Booking struct {
	events.Recorder

	id        string
	kind      Kind
	shopID    string
	shopName  string
	service   *Service
	customer  Customer
	address   Address
	quantity  int64
	notes     string
	carModel  string
	items     []Line
	total     *money.Money
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewOrder creates a pending order from the cart.
func NewOrder(id, shopID, shopName string, customer Customer, address Address, cart *Cart, now time.Time) (*Booking, error) {
	customer, err := customer.validate()
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	lines := cart.Lines()
	var qty int64
	for _, l := range lines {
		qty += l.Quantity
	}

	b := &Booking{
		id:        id,
		kind:      KindOrder,
		shopID:    shopID,
		shopName:  shopName,
		customer:  customer,
		address:   trimAddress(address),
		quantity:  qty,
		items:     lines,
		total:     Total(lines),
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}
	b.recordPlaced(now)
	return b, nil
}

// NewServiceBooking creates a pending booking of one service.
func NewServiceBooking(id, shopID, shopName string, service Service, customer Customer, address Address, carModel, notes string, now time.Time) (*Booking, error) {
	customer, err := customer.validate()
	if err != nil {
		return nil, err
	}

	b := &Booking{
		id:        id,
		kind:      KindService,
		shopID:    shopID,
		shopName:  shopName,
		service:   &service,
		customer:  customer,
		address:   trimAddress(address),
		quantity:  1,
		notes:     strings.TrimSpace(notes),
		carModel:  strings.TrimSpace(carModel),
		total:     service.Price,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}
	b.recordPlaced(now)
	return b, nil
}

// ReconstructBooking rebuilds the parts of a Booking needed for status changes.
func ReconstructBooking(id string, kind Kind, shopID string, status Status, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:        id,
		kind:      kind,
		shopID:    shopID,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) ID() string           { return b.id }
func (b *Booking) Kind() Kind           { return b.kind }
func (b *Booking) ShopID() string       { return b.shopID }
func (b *Booking) ShopName() string     { return b.shopName }
func (b *Booking) Service() *Service    { return b.service }
func (b *Booking) Customer() Customer   { return b.customer }
func (b *Booking) Address() Address     { return b.address }
func (b *Booking) Quantity() int64      { return b.quantity }
func (b *Booking) Notes() string        { return b.notes }
func (b *Booking) CarModel() string     { return b.carModel }
func (b *Booking) Items() []Line        { return append([]Line{}, b.items...) }
func (b *Booking) Total() *money.Money  { return b.total }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// SetStatus moves the booking to s. Any status may follow any other. Returns false when unchanged.
func (b *Booking) SetStatus(s Status, now time.Time) bool {
	if s == b.status {
		return false
	}
	from := b.status
	b.status = s
	b.updatedAt = now
	b.Record(&BookingStatusChangedEvent{BookingID: b.id, From: string(from), To: string(s), ChangedAt: now})
	return true
}

func (b *Booking) recordPlaced(now time.Time) {
	b.Record(&BookingPlacedEvent{
		BookingID:   b.id,
		Kind:        string(b.kind),
		ShopID:      b.shopID,
		ApartmentID: b.address.ApartmentID,
		Total:       b.total.String(),
		PlacedAt:    now,
	})
}

func trimAddress(a Address) Address {
	a.FlatNumber = strings.TrimSpace(a.FlatNumber)
	a.DoorNumber = strings.TrimSpace(a.DoorNumber)
	return a
}
