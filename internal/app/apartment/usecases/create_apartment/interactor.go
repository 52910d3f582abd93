package create_apartment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/aptmart-service/internal/app/apartment/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/apartment/domain"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
	"github.com/light-bringer/aptmart-service/internal/pkg/events"
)

// Request contains the data needed to register an apartment.
type Request struct {
	Name       string
	Address    string
	TotalFlats int64
}

// Interactor handles the create apartment use case.
type Interactor struct {
	repo      contracts.ApartmentRepository
	outbox    events.Writer
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new create apartment interactor.
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

// Execute creates the apartment and returns it.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Apartment, error) {
	apartment, err := domain.NewApartment(uuid.New().String(), req.Name, req.Address, req.TotalFlats, i.clock.Now())
	if err != nil {
		return nil, err
	}
	defer apartment.ClearEvents()

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(apartment))
	if err := events.Stage(plan, i.outbox, apartment.DomainEvents()); err != nil {
		return nil, err
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return apartment, nil
}
