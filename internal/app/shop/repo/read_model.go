package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	aptdomain "github.com/light-bringer/aptmart-service/internal/app/apartment/domain"
	"github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/shop/domain"
	"github.com/light-bringer/aptmart-service/internal/models/m_apartment"
	"github.com/light-bringer/aptmart-service/internal/models/m_shop"
	"github.com/light-bringer/aptmart-service/internal/pkg/query"
)

var shopSelect = []string{
	"s.shop_id", "s.seller_id", "s.name", "s.description", "s.category", "s.phone", "s.offering",
	"s.service_provider_name", "s.available_days", "s.available_time_start", "s.available_time_end",
	"s.is_active", "s.version", "s.created_at", "sl.service_provider_name", "sl.seller_type",
}

const (
	shopsWithSellers         = "shops s LEFT JOIN sellers sl ON sl.seller_id = s.seller_id"
	coveringShopsWithSellers = "shop_apartments sa JOIN shops s ON s.shop_id = sa.shop_id " +
		"LEFT JOIN sellers sl ON sl.seller_id = s.seller_id"
)

// ReadModelImpl implements the shop ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{client: client}
}

func (rm *ReadModelImpl) ListShops(ctx context.Context) ([]*contracts.ShopDTO, error) {
	stmt := query.From(shopsWithSellers).
		Select(shopSelect...).
		OrderBy("s.created_at", query.Desc).
		Build()

	shops, err := rm.queryShops(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if err := rm.attachApartments(ctx, shops); err != nil {
		return nil, err
	}
	return shops, nil
}

func (rm *ReadModelImpl) GetShop(ctx context.Context, shopID string) (*contracts.ShopDTO, error) {
	stmt := query.From(shopsWithSellers).
		Select(shopSelect...).
		Where(query.Eq("s.shop_id", shopID)).
		Build()

	shops, err := rm.queryShops(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(shops) == 0 {
		return nil, domain.ErrShopNotFound
	}
	if err := rm.attachApartments(ctx, shops); err != nil {
		return nil, err
	}
	return shops[0], nil
}

func (rm *ReadModelImpl) ShopsBySeller(ctx context.Context, sellerID string) ([]*contracts.ShopDTO, error) {
	stmt := query.From(shopsWithSellers).
		Select(shopSelect...).
		Where(query.Eq("s.seller_id", sellerID)).
		OrderBy("s.created_at", query.Asc).
		Build()

	shops, err := rm.queryShops(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if err := rm.attachApartments(ctx, shops); err != nil {
		return nil, err
	}
	return shops, nil
}

func (rm *ReadModelImpl) ActiveShopsForApartment(ctx context.Context, apartmentID string) (contracts.ApartmentRef, []*contracts.ShopDTO, error) {
	ref := contracts.ApartmentRef{ID: apartmentID}

	row, err := rm.client.Single().ReadRow(ctx, m_apartment.TableName, spanner.Key{apartmentID}, []string{m_apartment.Name})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return ref, nil, aptdomain.ErrApartmentNotFound
		}
		return ref, nil, fmt.Errorf("failed to read apartment: %w", err)
	}
	if err := row.Column(0, &ref.Name); err != nil {
		return ref, nil, fmt.Errorf("failed to parse apartment: %w", err)
	}

	stmt := query.From(coveringShopsWithSellers).
		Select(shopSelect...).
		Where(query.Eq("sa.apartment_id", apartmentID)).
		Where(query.Eq("s.is_active", true)).
		OrderBy("s.name", query.Asc).
		Build()

	shops, err := rm.queryShops(ctx, stmt)
	if err != nil {
		return ref, nil, err
	}
	return ref, shops, nil
}

func (rm *ReadModelImpl) Overview(ctx context.Context) (*contracts.OverviewDTO, error) {
	stmt := spanner.Statement{SQL: `SELECT
		(SELECT COUNT(*) FROM apartments),
		(SELECT COUNT(*) FROM shops),
		(SELECT COUNT(*) FROM shops WHERE is_active = FALSE),
		(SELECT COUNT(*) FROM bookings)`}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return nil, fmt.Errorf("failed to count overview: %w", err)
	}

	var o contracts.OverviewDTO
	if err := row.Columns(&o.Apartments, &o.Shops, &o.PendingShops, &o.Bookings); err != nil {
		return nil, fmt.Errorf("failed to parse overview: %w", err)
	}
	return &o, nil
}

func (rm *ReadModelImpl) queryShops(ctx context.Context, stmt spanner.Statement) ([]*contracts.ShopDTO, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	shops := make([]*contracts.ShopDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate shops: %w", err)
		}

		var d m_shop.Data
		var sellerName, sellerType spanner.NullString
		if err := row.Columns(
			&d.ShopID, &d.SellerID, &d.Name, &d.Description, &d.Category, &d.Phone, &d.Offering,
			&d.ServiceProviderName, &d.AvailableDays, &d.AvailableTimeStart, &d.AvailableTimeEnd,
			&d.IsActive, &d.Version, &d.CreatedAt, &sellerName, &sellerType,
		); err != nil {
			return nil, fmt.Errorf("failed to parse shop: %w", err)
		}

		dto := &contracts.ShopDTO{
			ID:            d.ShopID,
			SellerID:      d.SellerID.StringVal,
			Name:          d.Name,
			Description:   d.Description.StringVal,
			Category:      d.Category,
			Phone:         d.Phone.StringVal,
			Offering:      d.Offering.StringVal,
			ProviderName:  d.ServiceProviderName.StringVal,
			SellerType:    sellerType.StringVal,
			AvailableDays: d.AvailableDays,
			AvailableFrom: d.AvailableTimeStart.StringVal,
			AvailableTo:   d.AvailableTimeEnd.StringVal,
			Active:        d.IsActive,
			Apartments:    []contracts.ApartmentRef{},
			Version:       d.Version,
			CreatedAt:     d.CreatedAt,
		}
		if sellerName.Valid && dto.ProviderName == "" {
			dto.ProviderName = sellerName.StringVal
		}
		if dto.AvailableDays == nil {
			dto.AvailableDays = []string{}
		}
		if dto.Offering == "" {
			dto.Offering = string(domain.OfferingProducts)
		}
		shops = append(shops, dto)
	}
	return shops, nil
}

func (rm *ReadModelImpl) attachApartments(ctx context.Context, shops []*contracts.ShopDTO) error {
	if len(shops) == 0 {
		return nil
	}
	byID := make(map[string]*contracts.ShopDTO, len(shops))
	ids := make([]string, 0, len(shops))
	for _, s := range shops {
		byID[s.ID] = s
		ids = append(ids, s.ID)
	}

	stmt := query.From("shop_apartments sa JOIN apartments a ON a.apartment_id = sa.apartment_id").
		Select("sa.shop_id", "a.apartment_id", "a.name").
		Where(query.In("sa.shop_id", ids)).
		OrderBy("a.name", query.Asc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read shop coverage: %w", err)
		}
		var shopID string
		var ref contracts.ApartmentRef
		if err := row.Columns(&shopID, &ref.ID, &ref.Name); err != nil {
			return fmt.Errorf("failed to parse coverage row: %w", err)
		}
		if s, ok := byID[shopID]; ok {
			s.Apartments = append(s.Apartments, ref)
		}
	}
}
