// Package sellertest provides an in-memory seller repository for use case tests.
package sellertest

import (
	"context"

	"github.com/light-bringer/aptmart-service/internal/app/seller/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/seller/domain"
	"github.com/light-bringer/aptmart-service/internal/app/seller/repo"
)

// FakeRepo serves reads from a map and builds real mutations.
type FakeRepo struct {
	contracts.SellerRepository

	Sellers map[string]*domain.Seller
}

// NewFakeRepo creates a FakeRepo holding sellers.
func NewFakeRepo(sellers ...*domain.Seller) *FakeRepo {
	f := &FakeRepo{
		SellerRepository: repo.NewSellerRepo(nil),
		Sellers:          make(map[string]*domain.Seller),
	}
	for _, s := range sellers {
		f.Sellers[s.ID()] = s
	}
	return f
}

func (f *FakeRepo) GetByID(_ context.Context, sellerID string) (*domain.Seller, error) {
	s, ok := f.Sellers[sellerID]
	if !ok {
		return nil, domain.ErrSellerNotFound
	}
	return s, nil
}

func (f *FakeRepo) GetByPhone(_ context.Context, phone string) (*domain.Seller, error) {
	phone = domain.NormalizePhone(phone)
	for _, s := range f.Sellers {
		if s.Phone() == phone {
			return s, nil
		}
	}
	return nil, domain.ErrSellerNotFound
}
