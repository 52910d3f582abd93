package delete_apartment

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
	"github.com/light-bringer/aptmart-service/internal/pkg/committer/committertest"
)

func TestExecute_RemovesApartmentAndCoverage(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := apartmenttest.NewFakeRepo(domain.ReconstructApartment("apt-1", "Green Valley", "Whitefield", 80, 1, now, now))
	repo.Coverage["apt-1"] = []string{"shop-1", "shop-2"}
	rec := committertest.New()

	err := NewInteractor(repo, outboxrepo.NewOutboxRepo(nil), rec, clock.NewMockClock(now)).Execute(context.Background(), "apt-1")
	require.NoError(t, err)

	// two coverage rows, the apartment row and one outbox row
	assert.Equal(t, 4, rec.Last().Count())
}

func TestExecute_UnknownApartment(t *testing.T) {
	rec := committertest.New()
	uc := NewInteractor(apartmenttest.NewFakeRepo(), outboxrepo.NewOutboxRepo(nil), rec, clock.NewRealClock())

	err := uc.Execute(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrApartmentNotFound)
	assert.Zero(t, rec.Calls())
}
