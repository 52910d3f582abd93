// Package bookingtest provides in-memory collaborators for booking use case tests.
package bookingtest

import (
	"context"
	"sync"

	"github.com/light-bringer/aptmart-service/internal/app/booking/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/booking/domain"
	"github.com/light-bringer/aptmart-service/internal/app/booking/repo"
	catalogcontracts "github.com/light-bringer/aptmart-service/internal/app/catalog/contracts"
	catalogdomain "github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	shopcontracts "github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
	shopdomain "github.com/light-bringer/aptmart-service/internal/app/shop/domain"
)

// FakeRepo serves reads from a map and builds real mutations.
type FakeRepo struct {
	contracts.BookingRepository

	Bookings map[string]*domain.Booking
}

// NewFakeRepo creates a FakeRepo holding bookings.
func NewFakeRepo(bookings ...*domain.Booking) *FakeRepo {
	f := &FakeRepo{
		BookingRepository: repo.NewBookingRepo(nil),
		Bookings:          make(map[string]*domain.Booking),
	}
	for _, b := range bookings {
		f.Bookings[b.ID()] = b
	}
	return f
}

func (f *FakeRepo) GetByID(_ context.Context, bookingID string) (*domain.Booking, error) {
	b, ok := f.Bookings[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return b, nil
}

// Shops is a shop ReadModel serving GetShop from a map.
type Shops struct {
	shopcontracts.ReadModel

	ByID map[string]*shopcontracts.ShopDTO
}

func (s Shops) GetShop(_ context.Context, shopID string) (*shopcontracts.ShopDTO, error) {
	shop, ok := s.ByID[shopID]
	if !ok {
		return nil, shopdomain.ErrShopNotFound
	}
	return shop, nil
}

// Listings is a catalog ReadModel serving GetListings from a map.
type Listings struct {
	catalogcontracts.ReadModel

	ByID map[string]*catalogcontracts.ListingDTO
}

func (l Listings) GetListings(_ context.Context, kind catalogdomain.Kind, ids []string) ([]*catalogcontracts.ListingDTO, error) {
	out := make([]*catalogcontracts.ListingDTO, 0, len(ids))
	for _, id := range ids {
		if dto, ok := l.ByID[id]; ok && dto.Kind == string(kind) {
			out = append(out, dto)
		}
	}
	return out, nil
}

// Placements counts BookingPlaced calls by kind.
type Placements struct {
	mu     sync.Mutex
	ByKind map[string]int
}

func (p *Placements) BookingPlaced(kind string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ByKind == nil {
		p.ByKind = make(map[string]int)
	}
	p.ByKind[kind]++
}
