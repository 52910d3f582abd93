package update_apartment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/aptmart-service/internal/app/apartment/apartmenttest"
	"github.com/light-bringer/aptmart-service/internal/app/apartment/domain"
	outboxrepo "github.com/light-bringer/aptmart-service/internal/app/outbox/repo"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer/committertest"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func setup() (*Interactor, *committertest.Recorder) {
	apt := domain.ReconstructApartment("apt-1", "Palm Heights", "HSR Layout", 120, 2, now, now)
	rec := committertest.New()
	return NewInteractor(apartmenttest.NewFakeRepo(apt), outboxrepo.NewOutboxRepo(nil), rec, clock.NewMockClock(now)), rec
}

func TestExecute_UpdatesWithVersionGuard(t *testing.T) {
	uc, rec := setup()

	apt, err := uc.Execute(context.Background(), &Request{
		ApartmentID: "apt-1",
		Name:        "Palm Heights Phase 2",
		Address:     "HSR Layout",
		TotalFlats:  150,
		Version:     2,
	})
	require.NoError(t, err)

	assert.Equal(t, "Palm Heights Phase 2", apt.Name())
	require.Len(t, rec.Guards, 1)
	assert.Equal(t, int64(2), rec.Guards[0].Expected)
	assert.Equal(t, 2, rec.Last().Count())
}

func TestExecute_StaleVersion(t *testing.T) {
	uc, rec := setup()

	_, err := uc.Execute(context.Background(), &Request{ApartmentID: "apt-1", Name: "X", Address: "Y", Version: 1})

	assert.ErrorIs(t, err, committer.ErrVersionConflict)
	assert.Zero(t, rec.Calls())
}

func TestExecute_NoChangesSkipsCommit(t *testing.T) {
	uc, rec := setup()

	_, err := uc.Execute(context.Background(), &Request{ApartmentID: "apt-1", Name: "Palm Heights", Address: "HSR Layout", TotalFlats: 120})
	require.NoError(t, err)
	assert.Zero(t, rec.Calls())
}

func TestExecute_NotFound(t *testing.T) {
	uc, _ := setup()

	_, err := uc.Execute(context.Background(), &Request{ApartmentID: "missing", Name: "A", Address: "B"})
	assert.ErrorIs(t, err, domain.ErrApartmentNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc, rec := setup()

	_, err := uc.Execute(context.Background(), &Request{ApartmentID: "apt-1", Name: "", Address: "B"})
	assert.ErrorIs(t, err, domain.ErrEmptyName)
	assert.Zero(t, rec.Calls())
}
