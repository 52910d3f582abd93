package remove_listing

import (
	"context"
	"fmt"

	"github.com/light-bringer/aptmart-service/internal/app/catalog/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
	"github.com/light-bringer/aptmart-service/internal/pkg/events"
)

type Request struct {
	SellerID  string
	Kind      string
	ListingID string
}

// Interactor handles the remove listing use case.
type Interactor struct {
	repo      contracts.ListingRepository
	shops     contracts.ShopResolver
	outbox    events.Writer
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new remove listing interactor.
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

func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	kind, err := domain.ParseKind(req.Kind)
	if err != nil {
		return err
	}
	shopID, err := i.shops.ShopFor(ctx, req.SellerID, kind)
	if err != nil {
		return err
	}

	listing, err := i.repo.GetByID(ctx, kind, req.ListingID)
	if err != nil {
		return err
	}
	if listing.ShopID() != shopID {
		return domain.ErrListingNotFound
	}
	defer listing.ClearEvents()

	listing.MarkRemoved(i.clock.Now())

	plan := committer.NewPlan()
	plan.Add(i.repo.DeleteMut(kind, listing.ID()))
	if err := events.Stage(plan, i.outbox, listing.DomainEvents()); err != nil {
		return err
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
