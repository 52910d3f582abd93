package update_apartment

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/aptmart-service/internal/app/apartment/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/apartment/domain"
	"github.com/light-bringer/aptmart-service/internal/models/m_apartment"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
	"github.com/light-bringer/aptmart-service/internal/pkg/events"
)

// Request replaces the editable details of an apartment.
// Version > 0 enables the optimistic concurrency check.
type Request struct {
	ApartmentID string
	Name        string
	Address     string
	TotalFlats  int64
	Version     int64
}

// Interactor handles the update apartment use case.
type Interactor struct {
	repo      contracts.ApartmentRepository
	outbox    events.Writer
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new update apartment interactor.
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

// Execute updates the apartment and returns the stored state.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Apartment, error) {
	apartment, err := i.repo.GetByID(ctx, req.ApartmentID)
	if err != nil {
		return nil, err
	}
	defer apartment.ClearEvents()

	if req.Version > 0 && req.Version != apartment.Version() {
		return nil, fmt.Errorf("%w: expected %d, got %d", committer.ErrVersionConflict, req.Version, apartment.Version())
	}

	if err := apartment.Update(req.Name, req.Address, req.TotalFlats, i.clock.Now()); err != nil {
		return nil, err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(apartment))
	if err := events.Stage(plan, i.outbox, apartment.DomainEvents()); err != nil {
		return nil, err
	}
	if plan.IsEmpty() {
		return apartment, nil
	}

	guard := committer.VersionGuard{
		Table:    m_apartment.TableName,
		Key:      spanner.Key{apartment.ID()},
		Expected: req.Version,
	}
	if err := i.committer.ApplyWithVersionCheck(ctx, guard, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return apartment, nil
}
