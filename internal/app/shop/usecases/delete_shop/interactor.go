package delete_shop

import (
	"context"
	"fmt"

	"github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
	"github.com/light-bringer/aptmart-service/internal/pkg/events"
)

// Interactor handles the delete shop use case.
type Interactor struct {
	repo      contracts.ShopRepository
	outbox    events.Writer
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new delete shop interactor.
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

// Execute removes the shop's coverage rows and then the shop. Products and services cascade.
func (i *Interactor) Execute(ctx context.Context, shopID string) error {
	shop, err := i.repo.GetByID(ctx, shopID)
	if err != nil {
		return err
	}
	defer shop.ClearEvents()

	shop.MarkDeleted(i.clock.Now())

	plan := committer.NewPlan()
	plan.AddMultiple(i.repo.DeleteMuts(shopID))
	if err := events.Stage(plan, i.outbox, shop.DomainEvents()); err != nil {
		return err
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
