package choose_seller_type

import (
	"context"
	"fmt"

	"github.com/light-bringer/aptmart-service/internal/app/seller/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/seller/domain"
	shopcontracts "github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
	shopdomain "github.com/light-bringer/aptmart-service/internal/app/shop/domain"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
	"github.com/light-bringer/aptmart-service/internal/pkg/events"
)

type Request struct {
	SellerID string
	Type     string
}

// Interactor records whether a seller offers products or services.
type Interactor struct {
	sellers   contracts.SellerRepository
	shops     shopcontracts.ShopRepository
	outbox    events.Writer
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new choose seller type interactor.
func NewInteractor(
	sellers contracts.SellerRepository,
	shops shopcontracts.ShopRepository,
	outbox events.Writer,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		sellers:   sellers,
		shops:     shops,
		outbox:    outbox,
		committer: committer,
		clock:     clock,
	}
}

// Execute updates the seller and the offering of every shop it owns in one commit.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Seller, error) {
	t, err := domain.ParseType(req.Type)
	if err != nil {
		return nil, err
	}

	seller, err := i.sellers.GetByID(ctx, req.SellerID)
	if err != nil {
		return nil, err
	}
	defer seller.ClearEvents()

	shops, err := i.shops.ListBySeller(ctx, seller.ID())
	if err != nil {
		return nil, err
	}

	var apartmentIDs []string
	seen := make(map[string]bool)
	for _, s := range shops {
		for _, id := range s.ApartmentIDs() {
			if !seen[id] {
				seen[id] = true
				apartmentIDs = append(apartmentIDs, id)
			}
		}
	}

	now := i.clock.Now()
	if err := seller.ChooseType(t, apartmentIDs, now); err != nil {
		return nil, err
	}

	plan := committer.NewPlan()
	plan.Add(i.sellers.UpdateMut(seller))
	if err := events.Stage(plan, i.outbox, seller.DomainEvents()); err != nil {
		return nil, err
	}
	for _, s := range shops {
		s.SetOffering(shopdomain.Offering(t), now)
		plan.Add(i.shops.UpdateMut(s))
		err := events.Stage(plan, i.outbox, s.DomainEvents())
		s.ClearEvents()
		if err != nil {
			return nil, err
		}
	}
	if plan.IsEmpty() {
		return seller, nil
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return seller, nil
}
