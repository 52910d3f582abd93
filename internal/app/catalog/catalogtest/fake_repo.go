// Package catalogtest provides in-memory catalog collaborators for use case tests.
package catalogtest

import (
	"context"

	"github.com/light-bringer/aptmart-service/internal/app/catalog/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/repo"
)

// FakeRepo serves reads from a map and builds real mutations.
type FakeRepo struct {
	contracts.ListingRepository

	Listings map[string]*domain.Listing
}

// NewFakeRepo creates a FakeRepo holding listings.
func NewFakeRepo(listings ...*domain.Listing) *FakeRepo {
	f := &FakeRepo{
		ListingRepository: repo.NewListingRepo(nil),
		Listings:          make(map[string]*domain.Listing),
	}
	for _, l := range listings {
		f.Listings[l.ID()] = l
	}
	return f
}

func (f *FakeRepo) GetByID(_ context.Context, kind domain.Kind, listingID string) (*domain.Listing, error) {
	l, ok := f.Listings[listingID]
	if !ok || l.Kind() != kind {
		return nil, domain.ErrListingNotFound
	}
	return l, nil
}

// StaticResolver maps seller IDs to shop IDs, or fails with Err.
type StaticResolver struct {
	Shops map[string]string
	Err   error
}

func (r StaticResolver) ShopFor(_ context.Context, sellerID string, _ domain.Kind) (string, error) {
	if r.Err != nil {
		return "", r.Err
	}
	shopID, ok := r.Shops[sellerID]
	if !ok {
		return "", domain.ErrKindMismatch
	}
	return shopID, nil
}
