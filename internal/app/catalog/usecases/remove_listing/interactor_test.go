package remove_listing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/aptmart-service/internal/app/catalog/catalogtest"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	outboxrepo "github.com/light-bringer/aptmart-service/internal/app/outbox/repo"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer/committertest"
	"github.com/light-bringer/aptmart-service/internal/pkg/money"
)

func setup() (*Interactor, *committertest.Recorder) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	p, _ := money.Parse("30")
	repo := catalogtest.NewFakeRepo(
		domain.ReconstructListing("p-1", "shop-1", domain.KindProduct, domain.Fields{Name: "Eggs", Price: p}, 1, now, now),
	)
	resolver := catalogtest.StaticResolver{Shops: map[string]string{"seller-1": "shop-1", "seller-2": "shop-2"}}
	rec := committertest.New()
	return NewInteractor(repo, resolver, outboxrepo.NewOutboxRepo(nil), rec, clock.NewMockClock(now)), rec
}

func TestExecute_Removes(t *testing.T) {
	uc, rec := setup()

	err := uc.Execute(context.Background(), &Request{SellerID: "seller-1", Kind: "product", ListingID: "p-1"})
	require.NoError(t, err)

	assert.Equal(t, 2, rec.Last().Count())
}

func TestExecute_NotOwner(t *testing.T) {
	uc, rec := setup()

	err := uc.Execute(context.Background(), &Request{SellerID: "seller-2", Kind: "product", ListingID: "p-1"})

	assert.ErrorIs(t, err, domain.ErrListingNotFound)
	assert.Zero(t, rec.Calls())
}

func TestExecute_WrongKindTable(t *testing.T) {
	uc, _ := setup()

	err := uc.Execute(context.Background(), &Request{SellerID: "seller-1", Kind: "product", ListingID: "missing"})
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}
