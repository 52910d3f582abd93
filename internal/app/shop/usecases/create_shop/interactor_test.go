package create_shop

import (
	"context"
	"errors"
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
	repo := shoptest.NewFakeRepo().WithApartments("apt-1", "apt-2")
	rec := committertest.New()
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	return NewInteractor(repo, outboxrepo.NewOutboxRepo(nil), rec, clk), rec
}

func TestExecute_CreatesShopWithCoverage(t *testing.T) {
	uc, rec := setup()

	shop, err := uc.Execute(context.Background(), &Request{
		Details:      shoptest.Details("Fresh Mart"),
		Active:       true,
		ApartmentIDs: []string{"apt-1", "apt-2"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, shop.ID())
	assert.Equal(t, domain.OfferingProducts, shop.Offering())
	assert.Empty(t, shop.SellerID())
	assert.Empty(t, shop.DomainEvents())
	// shop insert, coverage reset, two coverage rows, one outbox row
	assert.Equal(t, 5, rec.Last().Count())
}

func TestExecute_ServicesOffering(t *testing.T) {
	uc, _ := setup()

	shop, err := uc.Execute(context.Background(), &Request{Details: shoptest.Details("CoolAir"), Offering: "Services"})
	require.NoError(t, err)
	assert.Equal(t, domain.OfferingServices, shop.Offering())
}

func TestExecute_UnknownApartment(t *testing.T) {
	uc, rec := setup()

	_, err := uc.Execute(context.Background(), &Request{
		Details:      shoptest.Details("Fresh Mart"),
		ApartmentIDs: []string{"apt-1", "apt-9"},
	})

	assert.ErrorIs(t, err, domain.ErrUnknownApartment)
	assert.Contains(t, err.Error(), "apt-9")
	assert.Zero(t, rec.Calls())
}

func TestExecute_Validation(t *testing.T) {
	uc, rec := setup()

	d := shoptest.Details("Fresh Mart")
	d.Category = "Jewellery"
	_, err := uc.Execute(context.Background(), &Request{Details: d})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	_, err = uc.Execute(context.Background(), &Request{Details: shoptest.Details("Fresh Mart"), Offering: "both"})
	assert.ErrorIs(t, err, domain.ErrInvalidOffering)

	assert.Zero(t, rec.Calls())
}

func TestExecute_CommitError(t *testing.T) {
	uc, rec := setup()
	rec.Err = errors.New("spanner unavailable")

	_, err := uc.Execute(context.Background(), &Request{Details: shoptest.Details("Fresh Mart")})
	assert.ErrorContains(t, err, "spanner unavailable")
}
