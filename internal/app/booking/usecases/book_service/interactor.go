package book_service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/aptmart-service/internal/app/booking/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/booking/domain"
	catalogcontracts "github.com/light-bringer/aptmart-service/internal/app/catalog/contracts"
	catalogdomain "github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	shopcontracts "github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
	"github.com/light-bringer/aptmart-service/internal/pkg/events"
	"github.com/light-bringer/aptmart-service/internal/pkg/money"
)

// Request is a resident's service booking.
type Request struct {
	ApartmentID string
	ShopID      string
	ServiceID   string
	Customer    domain.Customer
	FlatNumber  string
	DoorNumber  string
	CarModel    string
	Notes       string
}

// Result carries the stored booking and the link that opens the chat with the shop.
type Result struct {
	Booking *domain.Booking
	Total   *money.Money
	Message string
	ChatURL string
}

// Interactor handles the book service use case.
type Interactor struct {
	bookings  contracts.BookingRepository
	shops     shopcontracts.ReadModel
	listings  catalogcontracts.ReadModel
	outbox    events.Writer
	committer committer.Applier
	clock     clock.Clock
	links     contracts.ChatLinker
	format    domain.MessageFormat
	metrics   contracts.PlacementRecorder
}

// NewInteractor creates a new book service interactor.
func NewInteractor(
	bookings contracts.BookingRepository,
	shops shopcontracts.ReadModel,
	listings catalogcontracts.ReadModel,
	outbox events.Writer,
	committer committer.Applier,
	clock clock.Clock,
	links contracts.ChatLinker,
	format domain.MessageFormat,
	metrics contracts.PlacementRecorder,
) *Interactor {
	return &Interactor{
		bookings:  bookings,
		shops:     shops,
		listings:  listings,
		outbox:    outbox,
		committer: committer,
		clock:     clock,
		links:     links,
		format:    format,
		metrics:   metrics,
	}
}

func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	shop, apartment, err := contracts.OpenShop(ctx, i.shops, req.ApartmentID, req.ShopID)
	if err != nil {
		return nil, err
	}

	found, err := i.listings.GetListings(ctx, catalogdomain.KindService, []string{req.ServiceID})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 || found[0].ShopID != shop.ID || !found[0].Available {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemUnavailable, req.ServiceID)
	}
	svc := found[0]

	booking, err := domain.NewServiceBooking(uuid.New().String(), shop.ID, shop.Name,
		domain.Service{ID: svc.ID, Name: svc.Name, Price: svc.Price},
		req.Customer,
		domain.Address{
			ApartmentID:   apartment.ID,
			ApartmentName: apartment.Name,
			FlatNumber:    req.FlatNumber,
			DoorNumber:    req.DoorNumber,
		},
		req.CarModel, req.Notes, i.clock.Now())
	if err != nil {
		return nil, err
	}
	defer booking.ClearEvents()

	message := i.format.Service(booking)
	link, err := i.links.Link(shop.Phone, message)
	if err != nil {
		return nil, err
	}

	plan := committer.NewPlan()
	plan.Add(i.bookings.InsertMut(booking))
	if err := events.Stage(plan, i.outbox, booking.DomainEvents()); err != nil {
		return nil, err
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	i.metrics.BookingPlaced(string(domain.KindService))

	return &Result{Booking: booking, Total: booking.Total(), Message: message, ChatURL: link}, nil
}
