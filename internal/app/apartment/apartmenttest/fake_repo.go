// Package apartmenttest provides an in-memory apartment repository for use case tests.
package apartmenttest

import (
	"context"

	"github.com/light-bringer/aptmart-service/internal/app/apartment/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/apartment/domain"
	"github.com/light-bringer/aptmart-service/internal/app/apartment/repo"
)

// FakeRepo serves reads from maps and builds real mutations.
type FakeRepo struct {
	contracts.ApartmentRepository

	Apartments map[string]*domain.Apartment
	Coverage   map[string][]string
}

// NewFakeRepo creates a FakeRepo holding the given apartments.
func NewFakeRepo(apartments ...*domain.Apartment) *FakeRepo {
	f := &FakeRepo{
		ApartmentRepository: repo.NewApartmentRepo(nil),
		Apartments:          make(map[string]*domain.Apartment),
		Coverage:            make(map[string][]string),
	}
	for _, a := range apartments {
		f.Apartments[a.ID()] = a
	}
	return f
}

func (f *FakeRepo) GetByID(_ context.Context, apartmentID string) (*domain.Apartment, error) {
	a, ok := f.Apartments[apartmentID]
	if !ok {
		return nil, domain.ErrApartmentNotFound
	}
	return a, nil
}

func (f *FakeRepo) CoveringShopIDs(_ context.Context, apartmentID string) ([]string, error) {
	return append([]string{}, f.Coverage[apartmentID]...), nil
}
