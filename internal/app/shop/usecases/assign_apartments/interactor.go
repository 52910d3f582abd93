package assign_apartments

import (
	"context"
	"fmt"

	"github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/shop/domain"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
	"github.com/light-bringer/aptmart-service/internal/pkg/events"
)

// Request replaces the apartments a shop serves.
type Request struct {
	ShopID       string
	ApartmentIDs []string
}

// Interactor handles the assign apartments use case.
type Interactor struct {
	repo      contracts.ShopRepository
	outbox    events.Writer
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new assign apartments interactor.
func NewInteractor(
	repo contracts.ShopRepository,
	outbox events.Writer,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:      repo,
		outbox:    outbox,
		committer: committer,
		clock:     clock,
	}
}

// Execute deletes every existing coverage row and inserts the new set in one commit.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Shop, error) {
	shop, err := i.repo.GetByID(ctx, req.ShopID)
	if err != nil {
		return nil, err
	}
	defer shop.ClearEvents()

	shop.AssignApartments(req.ApartmentIDs, i.clock.Now())
	if err := contracts.CheckApartments(ctx, i.repo, shop.ApartmentIDs()); err != nil {
		return nil, err
	}

	plan := committer.NewPlan()
	plan.AddMultiple(i.repo.CoverageMuts(shop))
	if err := events.Stage(plan, i.outbox, shop.DomainEvents()); err != nil {
		return nil, err
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return shop, nil
}
