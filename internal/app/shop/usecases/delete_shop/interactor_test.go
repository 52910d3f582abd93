package delete_shop

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

func TestExecute_DeletesShop(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	shop := domain.ReconstructShop("shop-1", "", shoptest.Details("Fresh Mart"), domain.CategoryGrocery,
		domain.OfferingProducts, true, []string{"apt-1", "apt-2"}, 1, now, now)
	rec := committertest.New()

	err := NewInteractor(shoptest.NewFakeRepo(shop), outboxrepo.NewOutboxRepo(nil), rec, clock.NewMockClock(now)).
		Execute(context.Background(), "shop-1")
	require.NoError(t, err)

	// coverage range delete, shop delete, one outbox row
	assert.Equal(t, 3, rec.Last().Count())
	assert.Empty(t, shop.DomainEvents())
}

func TestExecute_NotFound(t *testing.T) {
	rec := committertest.New()

	err := NewInteractor(shoptest.NewFakeRepo(), outboxrepo.NewOutboxRepo(nil), rec, clock.NewRealClock()).
		Execute(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrShopNotFound)
	assert.Zero(t, rec.Calls())
}
