package add_listing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/aptmart-service/internal/app/catalog/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
	"github.com/light-bringer/aptmart-service/internal/pkg/events"
)

// Request contains a new product or service.
type Request struct {
	SellerID string
	Kind     string
	Fields   domain.Fields
}

// Interactor handles the add listing use case.
type Interactor struct {
	repo      contracts.ListingRepository
	shops     contracts.ShopResolver
	outbox    events.Writer
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new add listing interactor.
func NewInteractor(
	repo contracts.ListingRepository,
	shops contracts.ShopResolver,
	outbox events.Writer,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:      repo,
		shops:     shops,
		outbox:    outbox,
		committer: committer,
		clock:     clock,
	}
}

// Execute adds the listing to the seller's shop.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Listing, error) {
	kind, err := domain.ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}
	shopID, err := i.shops.ShopFor(ctx, req.SellerID, kind)
	if err != nil {
		return nil, err
	}

	listing, err := domain.NewListing(uuid.New().String(), shopID, kind, req.Fields, i.clock.Now())
	if err != nil {
		return nil, err
	}
	defer listing.ClearEvents()

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(listing))
	if err := events.Stage(plan, i.outbox, listing.DomainEvents()); err != nil {
		return nil, err
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return listing, nil
}
