package update_shop

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/shop/domain"
	"github.com/light-bringer/aptmart-service/internal/models/m_shop"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
	"github.com/light-bringer/aptmart-service/internal/pkg/events"
)

// Request replaces the editable details of a shop.
type Request struct {
	ShopID   string
	Details  domain.Details
	Offering string // empty keeps the current offering
	Version  int64  // > 0 enables the optimistic check
}

// Interactor handles the admin update shop use case.
type Interactor struct {
	repo      contracts.ShopRepository
	outbox    events.Writer
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new update shop interactor.
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

func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Shop, error) {
	shop, err := i.repo.GetByID(ctx, req.ShopID)
	if err != nil {
		return nil, err
	}
	defer shop.ClearEvents()

	if req.Version > 0 && req.Version != shop.Version() {
		return nil, fmt.Errorf("%w: expected %d, got %d", committer.ErrVersionConflict, req.Version, shop.Version())
	}

	now := i.clock.Now()
	if err := shop.Update(req.Details, now); err != nil {
		return nil, err
	}
	if req.Offering != "" {
		o, err := domain.ParseOffering(req.Offering)
		if err != nil {
			return nil, err
		}
		shop.SetOffering(o, now)
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(shop))
	if err := events.Stage(plan, i.outbox, shop.DomainEvents()); err != nil {
		return nil, err
	}
	if plan.IsEmpty() {
		return shop, nil
	}

	guard := committer.VersionGuard{Table: m_shop.TableName, Key: spanner.Key{shop.ID()}, Expected: req.Version}
	if err := i.committer.ApplyWithVersionCheck(ctx, guard, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return shop, nil
}
