package create_shop

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/shop/domain"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
	"github.com/light-bringer/aptmart-service/internal/pkg/events"
)

// Request contains the data an admin provides for a new shop.
type Request struct {
	Details      domain.Details
	Offering     string // defaults to products
	Active       bool
	ApartmentIDs []string
}

// Interactor handles the admin create shop use case.
type Interactor struct {
	repo      contracts.ShopRepository
	outbox    events.Writer
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new create shop interactor.
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

// Execute creates the shop with its coverage in one commit.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Shop, error) {
	offering := domain.OfferingProducts
	if req.Offering != "" {
		o, err := domain.ParseOffering(req.Offering)
		if err != nil {
			return nil, err
		}
		offering = o
	}

	shop, err := domain.NewShop(uuid.New().String(), "", req.Details, offering, req.Active, req.ApartmentIDs, i.clock.Now())
	if err != nil {
		return nil, err
	}
	defer shop.ClearEvents()

	if err := contracts.CheckApartments(ctx, i.repo, shop.ApartmentIDs()); err != nil {
		return nil, err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(shop))
	plan.AddMultiple(i.repo.CoverageMuts(shop))
	if err := events.Stage(plan, i.outbox, shop.DomainEvents()); err != nil {
		return nil, err
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return shop, nil
}
