package update_shop

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
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer/committertest"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func setup() (*Interactor, *committertest.Recorder) {
	d := shoptest.Details("Fresh Mart")
	d.AvailableDays = []string{"Monday", "Tuesday"}
	shop := domain.ReconstructShop("shop-1", "", d, domain.CategoryGrocery, domain.OfferingProducts, true,
		[]string{"apt-1"}, 3, now, now)
	rec := committertest.New()
	return NewInteractor(shoptest.NewFakeRepo(shop), outboxrepo.NewOutboxRepo(nil), rec, clock.NewMockClock(now)), rec
}

func TestExecute_UpdatesWithVersionGuard(t *testing.T) {
	uc, rec := setup()

	d := shoptest.Details("Fresh Mart Express")
	shop, err := uc.Execute(context.Background(), &Request{ShopID: "shop-1", Details: d, Version: 3})
	require.NoError(t, err)

	assert.Equal(t, "Fresh Mart Express", shop.Name())
	require.Len(t, rec.Guards, 1)
	assert.Equal(t, int64(3), rec.Guards[0].Expected)
	assert.Equal(t, 2, rec.Last().Count())
}

func TestExecute_ChangesOffering(t *testing.T) {
	uc, rec := setup()

	shop, err := uc.Execute(context.Background(), &Request{
		ShopID:   "shop-1",
		Details:  shoptest.Details("Fresh Mart"),
		Offering: "services",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OfferingServices, shop.Offering())
	assert.Equal(t, 1, rec.Calls())
}

func TestExecute_NoChangesSkipsCommit(t *testing.T) {
	uc, rec := setup()

	_, err := uc.Execute(context.Background(), &Request{ShopID: "shop-1", Details: shoptest.Details("Fresh Mart")})
	require.NoError(t, err)
	assert.Zero(t, rec.Calls())
}

func TestExecute_StaleVersion(t *testing.T) {
	uc, rec := setup()

	_, err := uc.Execute(context.Background(), &Request{ShopID: "shop-1", Details: shoptest.Details("X"), Version: 2})

	assert.ErrorIs(t, err, committer.ErrVersionConflict)
	assert.Zero(t, rec.Calls())
}

func TestExecute_NotFound(t *testing.T) {
	uc, _ := setup()

	_, err := uc.Execute(context.Background(), &Request{ShopID: "missing", Details: shoptest.Details("X")})
	assert.ErrorIs(t, err, domain.ErrShopNotFound)
}

func TestExecute_InvalidHours(t *testing.T) {
	uc, rec := setup()

	d := shoptest.Details("Fresh Mart")
	d.AvailableFrom, d.AvailableTo = "21:00", "08:00"
	_, err := uc.Execute(context.Background(), &Request{ShopID: "shop-1", Details: d})

	assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)
	assert.Zero(t, rec.Calls())
}
