package update_listing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/aptmart-service/internal/app/catalog/catalogtest"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	outboxrepo "github.com/light-bringer/aptmart-service/internal/app/outbox/repo"
	"github.com/light-bringer/aptmart-service/internal/models/m_service"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer/committertest"
	"github.com/light-bringer/aptmart-service/internal/pkg/money"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func amount(s string) *money.Money {
	m, _ := money.Parse(s)
	return m
}

func setup() (*Interactor, *committertest.Recorder) {
	repo := catalogtest.NewFakeRepo(
		domain.ReconstructListing("svc-1", "shop-1", domain.KindService, domain.Fields{Name: "AC service", Price: amount("799"), Available: true}, 2, now, now),
		domain.ReconstructListing("svc-2", "shop-2", domain.KindService, domain.Fields{Name: "RO service", Price: amount("399"), Available: true}, 1, now, now),
	)
	resolver := catalogtest.StaticResolver{Shops: map[string]string{"seller-1": "shop-1"}}
	rec := committertest.New()
	return NewInteractor(repo, resolver, outboxrepo.NewOutboxRepo(nil), rec, clock.NewMockClock(now)), rec
}

func TestExecute_UpdatesPrice(t *testing.T) {
	uc, rec := setup()

	l, err := uc.Execute(context.Background(), &Request{
		SellerID:  "seller-1",
		Kind:      "service",
		ListingID: "svc-1",
		Fields:    domain.Fields{Name: "AC service", Price: amount("899"), Available: true},
		Version:   2,
	})
	require.NoError(t, err)

	assert.Equal(t, "899.00", l.Price().String())
	require.Len(t, rec.Guards, 1)
	assert.Equal(t, m_service.TableName, rec.Guards[0].Table)
	assert.Equal(t, 2, rec.Last().Count())
}

func TestExecute_OtherShopsListingIsNotFound(t *testing.T) {
	uc, rec := setup()

	_, err := uc.Execute(context.Background(), &Request{
		SellerID:  "seller-1",
		Kind:      "service",
		ListingID: "svc-2",
		Fields:    domain.Fields{Name: "Mine now", Price: amount("1")},
	})

	assert.ErrorIs(t, err, domain.ErrListingNotFound)
	assert.Zero(t, rec.Calls())
}

func TestExecute_StaleVersion(t *testing.T) {
	uc, _ := setup()

	_, err := uc.Execute(context.Background(), &Request{
		SellerID:  "seller-1",
		Kind:      "service",
		ListingID: "svc-1",
		Fields:    domain.Fields{Name: "AC service", Price: amount("899")},
		Version:   1,
	})
	assert.ErrorIs(t, err, committer.ErrVersionConflict)
}
