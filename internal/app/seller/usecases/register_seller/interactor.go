package register_seller

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/aptmart-service/internal/app/seller/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/seller/domain"
	shopcontracts "github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
	shopdomain "github.com/light-bringer/aptmart-service/internal/app/shop/domain"
	"github.com/light-bringer/aptmart-service/internal/pkg/auth"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
	"github.com/light-bringer/aptmart-service/internal/pkg/events"
)

// ShopRequest describes the shop created alongside the seller.
type ShopRequest struct {
	Name          string
	Description   string
	Category      string
	AvailableDays []string
	AvailableFrom string
	AvailableTo   string
}

// Request contains the sign-up form.
type Request struct {
	Phone        string
	Password     string
	ProviderName string
	Shop         ShopRequest
	ApartmentIDs []string
}

// Result is the registered seller and its pending shop.
type Result struct {
	Seller *domain.Seller
	Shop   *shopdomain.Shop
}

// Interactor handles seller sign-up.
type Interactor struct {
	sellers   contracts.SellerRepository
	shops     shopcontracts.ShopRepository
	outbox    events.Writer
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new register seller interactor.
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

// Execute creates the seller, an inactive shop awaiting admin approval and its coverage in one commit.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	if err := domain.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	now := i.clock.Now()
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	seller, err := domain.NewSeller(uuid.New().String(), req.Phone, hash, req.ProviderName, now)
	if err != nil {
		return nil, err
	}
	defer seller.ClearEvents()

	shop, err := shopdomain.NewShop(uuid.New().String(), seller.ID(), shopdomain.Details{
		Name:          req.Shop.Name,
		Description:   req.Shop.Description,
		Category:      req.Shop.Category,
		Phone:         seller.Phone(),
		ProviderName:  seller.ProviderName(),
		AvailableDays: req.Shop.AvailableDays,
		AvailableFrom: req.Shop.AvailableFrom,
		AvailableTo:   req.Shop.AvailableTo,
	}, shopdomain.OfferingNone, false, req.ApartmentIDs, now)
	if err != nil {
		return nil, err
	}
	defer shop.ClearEvents()

	switch _, err := i.sellers.GetByPhone(ctx, seller.Phone()); {
	case err == nil:
		return nil, domain.ErrPhoneTaken
	case !errors.Is(err, domain.ErrSellerNotFound):
		return nil, err
	}
	if err := shopcontracts.CheckApartments(ctx, i.shops, shop.ApartmentIDs()); err != nil {
		return nil, err
	}

	plan := committer.NewPlan()
	plan.Add(i.sellers.InsertMut(seller))
	plan.Add(i.shops.InsertMut(shop))
	plan.AddMultiple(i.shops.CoverageMuts(shop))
	if err := events.Stage(plan, i.outbox, seller.DomainEvents()); err != nil {
		return nil, err
	}
	if err := events.Stage(plan, i.outbox, shop.DomainEvents()); err != nil {
		return nil, err
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		// lost a race with another sign-up on the unique phone index
		if errors.Is(err, committer.ErrAlreadyExists) {
			return nil, domain.ErrPhoneTaken
		}
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &Result{Seller: seller, Shop: shop}, nil
}
