// Package shoptest provides an in-memory shop repository for use case tests.
package shoptest

import (
	"context"

	"github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/shop/domain"
	"github.com/light-bringer/aptmart-service/internal/app/shop/repo"
)

// FakeRepo serves reads from maps and builds real mutations.
type FakeRepo struct {
	contracts.ShopRepository

	Shops      map[string]*domain.Shop
	Apartments map[string]bool
}

// NewFakeRepo creates a FakeRepo holding the given shops. Known apartments are added with WithApartments.
func NewFakeRepo(shops ...*domain.Shop) *FakeRepo {
	f := &FakeRepo{
		ShopRepository: repo.NewShopRepo(nil),
		Shops:          make(map[string]*domain.Shop),
		Apartments:     make(map[string]bool),
	}
	for _, s := range shops {
		f.Shops[s.ID()] = s
	}
	return f
}

// WithApartments marks apartment IDs as existing.
func (f *FakeRepo) WithApartments(ids ...string) *FakeRepo {
	for _, id := range ids {
		f.Apartments[id] = true
	}
	return f
}

func (f *FakeRepo) GetByID(_ context.Context, shopID string) (*domain.Shop, error) {
	s, ok := f.Shops[shopID]
	if !ok {
		return nil, domain.ErrShopNotFound
	}
	return s, nil
}

func (f *FakeRepo) ListBySeller(_ context.Context, sellerID string) ([]*domain.Shop, error) {
	var out []*domain.Shop
	for _, s := range f.Shops {
		if s.SellerID() == sellerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *FakeRepo) MissingApartments(_ context.Context, ids []string) ([]string, error) {
	var missing []string
	for _, id := range ids {
		if !f.Apartments[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// Details returns valid shop details for tests.
func Details(name string) domain.Details {
	return domain.Details{
		Name:          name,
		Category:      string(domain.CategoryGrocery),
		Phone:         "+91 98765 43210",
		AvailableDays: []string{"Monday", "Tuesday"},
		AvailableFrom: "08:00",
		AvailableTo:   "21:00",
	}
}
