package http

import (
	apartmentcontracts "github.com/light-bringer/aptmart-service/internal/app/apartment/contracts"
	apartmentdomain "github.com/light-bringer/aptmart-service/internal/app/apartment/domain"
	bookingcontracts "github.com/light-bringer/aptmart-service/internal/app/booking/contracts"
	bookingdomain "github.com/light-bringer/aptmart-service/internal/app/booking/domain"
	catalogcontracts "github.com/light-bringer/aptmart-service/internal/app/catalog/contracts"
	catalogdomain "github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	sellerdomain "github.com/light-bringer/aptmart-service/internal/app/seller/domain"
	"github.com/light-bringer/aptmart-service/internal/app/seller/queries/seller_dashboard"
	shopcontracts "github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
	shopdomain "github.com/light-bringer/aptmart-service/internal/app/shop/domain"
)

func apartmentToView(a *apartmentdomain.Apartment) *apartmentcontracts.ApartmentDTO {
	return &apartmentcontracts.ApartmentDTO{
		ID:         a.ID(),
		Name:       a.Name(),
		Address:    a.Address(),
		TotalFlats: a.TotalFlats(),
		Version:    a.Version(),
		CreatedAt:  a.CreatedAt(),
		UpdatedAt:  a.UpdatedAt(),
	}
}

// shopToView renders a shop aggregate. Apartment names are not loaded on the write side.
func shopToView(s *shopdomain.Shop) *shopcontracts.ShopDTO {
	ids := s.ApartmentIDs()
	refs := make([]shopcontracts.ApartmentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, shopcontracts.ApartmentRef{ID: id})
	}
	return &shopcontracts.ShopDTO{
		ID:            s.ID(),
		SellerID:      s.SellerID(),
		Name:          s.Name(),
		Description:   s.Description(),
		Category:      string(s.Category()),
		Phone:         s.Phone(),
		Offering:      string(s.Offering()),
		ProviderName:  s.ProviderName(),
		AvailableDays: s.AvailableDays(),
		AvailableFrom: s.AvailableFrom(),
		AvailableTo:   s.AvailableTo(),
		Active:        s.Active(),
		Apartments:    refs,
		Version:       s.Version(),
		CreatedAt:     s.CreatedAt(),
	}
}

func sellerToView(s *sellerdomain.Seller) seller_dashboard.SellerDTO {
	return seller_dashboard.SellerDTO{
		ID:           s.ID(),
		Phone:        s.Phone(),
		ProviderName: s.ProviderName(),
		Type:         string(s.Type()),
	}
}

func listingToView(l *catalogdomain.Listing) *catalogcontracts.ListingDTO {
	return &catalogcontracts.ListingDTO{
		ID:          l.ID(),
		ShopID:      l.ShopID(),
		Kind:        string(l.Kind()),
		Name:        l.Name(),
		Description: l.Description(),
		Price:       l.Price(),
		ImageURL:    l.ImageURL(),
		Available:   l.Available(),
		Version:     l.Version(),
		CreatedAt:   l.CreatedAt(),
		UpdatedAt:   l.UpdatedAt(),
	}
}

func bookingToView(b *bookingdomain.Booking) *bookingcontracts.BookingDTO {
	dto := &bookingcontracts.BookingDTO{
		ID:            b.ID(),
		Kind:          string(b.Kind()),
		ShopID:        b.ShopID(),
		ShopName:      b.ShopName(),
		CustomerName:  b.Customer().Name,
		CustomerPhone: b.Customer().Phone,
		ApartmentID:   b.Address().ApartmentID,
		ApartmentName: b.Address().ApartmentName,
		FlatNumber:    b.Address().FlatNumber,
		DoorNumber:    b.Address().DoorNumber,
		Quantity:      b.Quantity(),
		Notes:         b.Notes(),
		CarModel:      b.CarModel(),
		Items:         b.Items(),
		Total:         b.Total(),
		Status:        string(b.Status()),
		CreatedAt:     b.CreatedAt(),
	}
	if svc := b.Service(); svc != nil {
		dto.ServiceID = svc.ID
		dto.ServiceName = svc.Name
		dto.ServicePrice = svc.Price
	}
	return dto
}
