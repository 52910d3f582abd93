package delete_apartment

import (
	"context"
	"fmt"

	"github.com/light-bringer/aptmart-service/internal/app/apartment/contracts"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
	"github.com/light-bringer/aptmart-service/internal/pkg/events"
)

// Interactor handles the delete apartment use case.
type Interactor struct {
	repo      contracts.ApartmentRepository
	outbox    events.Writer
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new delete apartment interactor.
func NewInteractor(
	repo contracts.ApartmentRepository,
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

// Execute removes the apartment and every shop_apartments row pointing at it in one commit.
func (i *Interactor) Execute(ctx context.Context, apartmentID string) error {
	apartment, err := i.repo.GetByID(ctx, apartmentID)
	if err != nil {
		return err
	}
	defer apartment.ClearEvents()

	shopIDs, err := i.repo.CoveringShopIDs(ctx, apartmentID)
	if err != nil {
		return err
	}
	apartment.MarkDeleted(shopIDs, i.clock.Now())

	plan := committer.NewPlan()
	plan.AddMultiple(i.repo.DeleteMuts(apartmentID, shopIDs))
	if err := events.Stage(plan, i.outbox, apartment.DomainEvents()); err != nil {
		return err
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
