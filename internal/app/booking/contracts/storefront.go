package contracts

import (
	"context"

	shopcontracts "github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
	shopdomain "github.com/light-bringer/aptmart-service/internal/app/shop/domain"
)

// ChatLinker builds a deep link that opens a chat with phone pre-filled with text.
type ChatLinker interface {
	Link(phone, text string) (string, error)
}

// PlacementRecorder counts placed bookings by kind.
type PlacementRecorder interface {
	BookingPlaced(kind string)
}

// OpenShop loads a shop residents of apartmentID may book from, along with that apartment.
func OpenShop(ctx context.Context, shops shopcontracts.ReadModel, apartmentID, shopID string) (*shopcontracts.ShopDTO, shopcontracts.ApartmentRef, error) {
	shop, err := shops.GetShop(ctx, shopID)
	if err != nil {
		return nil, shopcontracts.ApartmentRef{}, err
	}
	if !shop.Active {
		return nil, shopcontracts.ApartmentRef{}, shopdomain.ErrShopNotActive
	}
	for _, a := range shop.Apartments {
		if a.ID == apartmentID {
			return shop, a, nil
		}
	}
	return nil, shopcontracts.ApartmentRef{}, shopdomain.ErrShopNotInApartment
}
