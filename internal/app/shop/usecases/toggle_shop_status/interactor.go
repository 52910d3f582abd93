package toggle_shop_status

import (
	"context"
	"fmt"

	"github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
	"github.com/light-bringer/aptmart-service/internal/pkg/events"
)

// Interactor flips a shop between active and inactive.
type Interactor struct {
	repo      contracts.ShopRepository
	outbox    events.Writer
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new toggle shop status interactor.
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

// Execute persists the flipped flag and returns the new value.
func (i *Interactor) Execute(ctx context.Context, shopID string) (bool, error) {
	shop, err := i.repo.GetByID(ctx, shopID)
	if err != nil {
		return false, err
	}
	defer shop.ClearEvents()

	active := shop.Toggle(i.clock.Now())

	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(shop))
	if err := events.Stage(plan, i.outbox, shop.DomainEvents()); err != nil {
		return false, err
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return active, nil
}
