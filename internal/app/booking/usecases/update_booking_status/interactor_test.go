package update_booking_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/aptmart-service/internal/app/booking/bookingtest"
	"github.com/light-bringer/aptmart-service/internal/app/booking/domain"
	outboxrepo "github.com/light-bringer/aptmart-service/internal/app/outbox/repo"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer/committertest"
)

func setup() (*Interactor, *committertest.Recorder) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := bookingtest.NewFakeRepo(domain.ReconstructBooking("b-1", domain.KindOrder, "shop-1", domain.StatusPending, now, now))
	rec := committertest.New()
	return NewInteractor(repo, outboxrepo.NewOutboxRepo(nil), rec, clock.NewMockClock(now)), rec
}

func TestExecute_ChangesStatus(t *testing.T) {
	uc, rec := setup()

	b, err := uc.Execute(context.Background(), &Request{BookingID: "b-1", Status: "Confirmed"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, b.Status())
	assert.Equal(t, 2, rec.Last().Count())
}

func TestExecute_SameStatusSkipsCommit(t *testing.T) {
	uc, rec := setup()

	_, err := uc.Execute(context.Background(), &Request{BookingID: "b-1", Status: "pending"})
	require.NoError(t, err)
	assert.Zero(t, rec.Calls())
}

func TestExecute_Errors(t *testing.T) {
	uc, rec := setup()

	_, err := uc.Execute(context.Background(), &Request{BookingID: "b-1", Status: "shipped"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = uc.Execute(context.Background(), &Request{BookingID: "ghost", Status: "completed"})
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	assert.Zero(t, rec.Calls())
}
