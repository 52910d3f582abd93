package update_booking_status

import (
	"context"
	"fmt"

	"github.com/light-bringer/aptmart-service/internal/app/booking/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/booking/domain"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
	"github.com/light-bringer/aptmart-service/internal/pkg/events"
)

type Request struct {
	BookingID string
	Status    string
}

// Interactor lets an admin move a booking between statuses.
type Interactor struct {
	repo      contracts.BookingRepository
	outbox    events.Writer
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new update booking status interactor.
func NewInteractor(
	repo contracts.BookingRepository,
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

func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	booking, err := i.repo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	defer booking.ClearEvents()

	if !booking.SetStatus(status, i.clock.Now()) {
		return booking, nil
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.StatusMut(booking))
	if err := events.Stage(plan, i.outbox, booking.DomainEvents()); err != nil {
		return nil, err
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return booking, nil
}
