package create_apartment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/aptmart-service/internal/app/apartment/apartmenttest"
	"github.com/light-bringer/aptmart-service/internal/app/apartment/domain"
	outboxrepo "github.com/light-bringer/aptmart-service/internal/app/outbox/repo"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer/committertest"
)

func newInteractor(rec *committertest.Recorder) *Interactor {
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	return NewInteractor(apartmenttest.NewFakeRepo(), outboxrepo.NewOutboxRepo(nil), rec, clk)
}

func TestExecute_CreatesApartmentWithEvent(t *testing.T) {
	rec := committertest.New()

	apt, err := newInteractor(rec).Execute(context.Background(), &Request{
		Name:       "Skyline Residences",
		Address:    "MG Road, Bengaluru",
		TotalFlats: 240,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, apt.ID())
	assert.Equal(t, "Skyline Residences", apt.Name())
	require.Equal(t, 1, rec.Calls())
	assert.Equal(t, 2, rec.Last().Count(), "apartment row plus outbox row")
	assert.Empty(t, apt.DomainEvents())
}

func TestExecute_EmptyNameRejected(t *testing.T) {
	rec := committertest.New()

	_, err := newInteractor(rec).Execute(context.Background(), &Request{Address: "MG Road"})

	assert.ErrorIs(t, err, domain.ErrEmptyName)
	assert.Zero(t, rec.Calls())
}

func TestExecute_CommitFailure(t *testing.T) {
	rec := committertest.New()
	rec.Err = errors.New("unavailable")

	_, err := newInteractor(rec).Execute(context.Background(), &Request{Name: "Green Valley", Address: "Whitefield"})

	assert.ErrorIs(t, err, rec.Err)
}
