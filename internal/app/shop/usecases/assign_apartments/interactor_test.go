package assign_apartments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	outboxrepo "github.com/light-bringer/aptmart-service/internal/app/outbox/repo"
	"github.com/light-bringer/aptmart-service/internal/app/shop/domain"
	"github.com/light-bringer/aptmart-service/internal/app/shop/shoptest"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer/committertest"
)

func setup() (*Interactor, *committertest.Recorder) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	shop := domain.ReconstructShop("shop-1", "", shoptest.Details("Fresh Mart"), domain.CategoryGrocery,
		domain.OfferingProducts, true, []string{"apt-1"}, 1, now, now)
	repo := shoptest.NewFakeRepo(shop).WithApartments("apt-1", "apt-2", "apt-3")
	rec := committertest.New()
	return NewInteractor(repo, outboxrepo.NewOutboxRepo(nil), rec, clock.NewMockClock(now)), rec
}

func TestExecute_ReplacesCoverage(t *testing.T) {
	uc, rec := setup()

	shop, err := uc.Execute(context.Background(), &Request{ShopID: "shop-1", ApartmentIDs: []string{"apt-2", "apt-3", "apt-2"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"apt-2", "apt-3"}, shop.ApartmentIDs())
	// coverage reset, two coverage rows, one outbox row
	assert.Equal(t, 4, rec.Last().Count())
}

func TestExecute_EmptySetClearsCoverage(t *testing.T) {
	uc, rec := setup()

	shop, err := uc.Execute(context.Background(), &Request{ShopID: "shop-1"})
	require.NoError(t, err)

	assert.Empty(t, shop.ApartmentIDs())
	assert.Equal(t, 2, rec.Last().Count())
}

func TestExecute_UnknownApartment(t *testing.T) {
	uc, rec := setup()

	_, err := uc.Execute(context.Background(), &Request{ShopID: "shop-1", ApartmentIDs: []string{"apt-404"}})

	assert.ErrorIs(t, err, domain.ErrUnknownApartment)
	assert.Zero(t, rec.Calls())
}
