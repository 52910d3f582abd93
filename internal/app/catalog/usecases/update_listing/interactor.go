package update_listing

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/aptmart-service/internal/app/catalog/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	"github.com/light-bringer/aptmart-service/internal/models/m_product"
	"github.com/light-bringer/aptmart-service/internal/models/m_service"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
	"github.com/light-bringer/aptmart-service/internal/pkg/events"
)

// Request replaces the editable fields of a listing.
type Request struct {
	SellerID  string
	Kind      string
	ListingID string
	Fields    domain.Fields
	Version   int64 // > 0 enables the optimistic check
}

// Interactor handles the update listing use case.
type Interactor struct {
	repo      contracts.ListingRepository
	shops     contracts.ShopResolver
	outbox    events.Writer
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new update listing interactor.
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

// Execute updates a listing of the seller's shop. Listings of other shops read as not found.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Listing, error) {
	kind, err := domain.ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}
	shopID, err := i.shops.ShopFor(ctx, req.SellerID, kind)
	if err != nil {
		return nil, err
	}

	listing, err := i.repo.GetByID(ctx, kind, req.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.ShopID() != shopID {
		return nil, domain.ErrListingNotFound
	}
	defer listing.ClearEvents()

	if req.Version > 0 && req.Version != listing.Version() {
		return nil, fmt.Errorf("%w: expected %d, got %d", committer.ErrVersionConflict, req.Version, listing.Version())
	}

	if err := listing.Update(req.Fields, i.clock.Now()); err != nil {
		return nil, err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(listing))
	if err := events.Stage(plan, i.outbox, listing.DomainEvents()); err != nil {
		return nil, err
	}
	if plan.IsEmpty() {
		return listing, nil
	}

	table := m_product.TableName
	if kind == domain.KindService {
		table = m_service.TableName
	}
	guard := committer.VersionGuard{Table: table, Key: spanner.Key{listing.ID()}, Expected: req.Version}
	if err := i.committer.ApplyWithVersionCheck(ctx, guard, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return listing, nil
}
