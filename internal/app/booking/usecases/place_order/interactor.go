package place_order

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

// Item is one requested product.
type Item struct {
	ProductID string
	Quantity  int64
}

// Request is a resident's cart checkout.
type Request struct {
	ApartmentID string
	ShopID      string
	Customer    domain.Customer
	FlatNumber  string
	DoorNumber  string
	Items       []Item
}

// Result carries the stored order and the link that opens the chat with the shop.
type Result struct {
	Booking *domain.Booking
	Total   *money.Money
	Message string
	ChatURL string
}

// Interactor handles the place order use case.
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

// NewInteractor creates a new place order interactor.
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

// Execute prices the cart from stored products, records a pending order and renders the chat link.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	shop, apartment, err := contracts.OpenShop(ctx, i.shops, req.ApartmentID, req.ShopID)
	if err != nil {
		return nil, err
	}

	cart, err := i.buildCart(ctx, shop.ID, req.Items)
	if err != nil {
		return nil, err
	}

	booking, err := domain.NewOrder(uuid.New().String(), shop.ID, shop.Name, req.Customer, domain.Address{
		ApartmentID:   apartment.ID,
		ApartmentName: apartment.Name,
		FlatNumber:    req.FlatNumber,
		DoorNumber:    req.DoorNumber,
	}, cart, i.clock.Now())
	if err != nil {
		return nil, err
	}
	defer booking.ClearEvents()

	message := i.format.Order(booking)
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
	i.metrics.BookingPlaced(string(domain.KindOrder))

	return &Result{Booking: booking, Total: booking.Total(), Message: message, ChatURL: link}, nil
}

// buildCart skips non-positive quantities and requires every other item to be an available product of shopID.
func (i *Interactor) buildCart(ctx context.Context, shopID string, items []Item) (*domain.Cart, error) {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if it.Quantity > 0 {
			ids = append(ids, it.ProductID)
		}
	}
	if len(ids) == 0 {
		return nil, domain.ErrEmptyCart
	}

	products, err := i.listings.GetListings(ctx, catalogdomain.KindProduct, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*catalogcontracts.ListingDTO, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	cart := domain.NewCart()
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		p, ok := byID[it.ProductID]
		if !ok || p.ShopID != shopID || !p.Available {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemUnavailable, it.ProductID)
		}
		if err := cart.Add(domain.Line{ProductID: p.ID, Name: p.Name, UnitPrice: p.Price, Quantity: it.Quantity}); err != nil {
			return nil, err
		}
	}
	return cart, nil
}
