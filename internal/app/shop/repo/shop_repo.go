package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/shop/domain"
	"github.com/light-bringer/aptmart-service/internal/models/m_apartment"
	"github.com/light-bringer/aptmart-service/internal/models/m_shop"
	"github.com/light-bringer/aptmart-service/internal/models/m_shop_apartment"
	"github.com/light-bringer/aptmart-service/internal/pkg/query"
)

// ShopRepo implements ShopRepository for Spanner.
type ShopRepo struct {
	client   *spanner.Client
	model    *m_shop.Model
	coverage *m_shop_apartment.Model
}

// NewShopRepo creates a new ShopRepo.
func NewShopRepo(client *spanner.Client) contracts.ShopRepository {
	return &ShopRepo{
		client:   client,
		model:    m_shop.NewModel(),
		coverage: m_shop_apartment.NewModel(),
	}
}

func (r *ShopRepo) InsertMut(s *domain.Shop) *spanner.Mutation {
	return r.model.InsertMut(&m_shop.Data{
		ShopID:              s.ID(),
		SellerID:            nullString(s.SellerID()),
		Name:                s.Name(),
		Description:         spanner.NullString{StringVal: s.Description(), Valid: true},
		Category:            string(s.Category()),
		Phone:               spanner.NullString{StringVal: s.Phone(), Valid: true},
		Offering:            nullString(string(s.Offering())),
		ServiceProviderName: nullString(s.ProviderName()),
		AvailableDays:       s.AvailableDays(),
		AvailableTimeStart:  nullString(s.AvailableFrom()),
		AvailableTimeEnd:    nullString(s.AvailableTo()),
		IsActive:            s.Active(),
		Version:             s.Version(),
	})
}

func (r *ShopRepo) UpdateMut(s *domain.Shop) *spanner.Mutation {
	changes := s.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})
	if changes.Dirty(domain.FieldName) {
		updates[m_shop.Name] = s.Name()
	}
	if changes.Dirty(domain.FieldDescription) {
		updates[m_shop.Description] = s.Description()
	}
	if changes.Dirty(domain.FieldCategory) {
		updates[m_shop.Category] = string(s.Category())
	}
	if changes.Dirty(domain.FieldPhone) {
		updates[m_shop.Phone] = s.Phone()
	}
	if changes.Dirty(domain.FieldOffering) {
		updates[m_shop.Offering] = nullString(string(s.Offering()))
	}
	if changes.Dirty(domain.FieldProviderName) {
		updates[m_shop.ServiceProviderName] = nullString(s.ProviderName())
	}
	if changes.Dirty(domain.FieldAvailableDays) {
		updates[m_shop.AvailableDays] = s.AvailableDays()
	}
	if changes.Dirty(domain.FieldHours) {
		updates[m_shop.AvailableTimeStart] = nullString(s.AvailableFrom())
		updates[m_shop.AvailableTimeEnd] = nullString(s.AvailableTo())
	}
	if changes.Dirty(domain.FieldActive) {
		updates[m_shop.IsActive] = s.Active()
	}
	updates[m_shop.Version] = s.Version() + 1

	return r.model.UpdateMut(s.ID(), updates)
}

func (r *ShopRepo) CoverageMuts(s *domain.Shop) []*spanner.Mutation {
	ids := s.ApartmentIDs()
	muts := make([]*spanner.Mutation, 0, len(ids)+1)
	muts = append(muts, r.coverage.DeleteShopMut(s.ID()))
	for _, aptID := range ids {
		muts = append(muts, r.coverage.InsertMut(s.ID(), aptID))
	}
	return muts
}

func (r *ShopRepo) DeleteMuts(shopID string) []*spanner.Mutation {
	return []*spanner.Mutation{
		r.coverage.DeleteShopMut(shopID),
		r.model.DeleteMut(shopID),
	}
}

func (r *ShopRepo) GetByID(ctx context.Context, shopID string) (*domain.Shop, error) {
	row, err := r.client.Single().ReadRow(ctx, m_shop.TableName, spanner.Key{shopID}, m_shop.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrShopNotFound
		}
		return nil, fmt.Errorf("failed to read shop: %w", err)
	}

	var data m_shop.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse shop: %w", err)
	}

	apartmentIDs, err := r.coverageOf(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return dataToDomain(&data, apartmentIDs), nil
}

func (r *ShopRepo) ListBySeller(ctx context.Context, sellerID string) ([]*domain.Shop, error) {
	iter := r.client.Single().ReadUsingIndex(ctx, m_shop.TableName, m_shop.SellerIndex,
		spanner.Key{sellerID}.AsPrefix(), []string{m_shop.ShopID})
	defer iter.Stop()

	var ids []string
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read seller shops: %w", err)
		}
		var id string
		if err := row.Column(0, &id); err != nil {
			return nil, fmt.Errorf("failed to parse shop id: %w", err)
		}
		ids = append(ids, id)
	}

	shops := make([]*domain.Shop, 0, len(ids))
	for _, id := range ids {
		s, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		shops = append(shops, s)
	}
	return shops, nil
}

func (r *ShopRepo) MissingApartments(ctx context.Context, apartmentIDs []string) ([]string, error) {
	if len(apartmentIDs) == 0 {
		return nil, nil
	}

	stmt := query.From(m_apartment.TableName).
		Select(m_apartment.ApartmentID).
		Where(query.In(m_apartment.ApartmentID, apartmentIDs)).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	found := make(map[string]bool, len(apartmentIDs))
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to look up apartments: %w", err)
		}
		var id string
		if err := row.Column(0, &id); err != nil {
			return nil, fmt.Errorf("failed to parse apartment id: %w", err)
		}
		found[id] = true
	}

	var missing []string
	for _, id := range apartmentIDs {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (r *ShopRepo) coverageOf(ctx context.Context, shopID string) ([]string, error) {
	iter := r.client.Single().Read(ctx, m_shop_apartment.TableName,
		spanner.Key{shopID}.AsPrefix(), []string{m_shop_apartment.ApartmentID})
	defer iter.Stop()

	ids := make([]string, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read shop coverage: %w", err)
		}
		var id string
		if err := row.Column(0, &id); err != nil {
			return nil, fmt.Errorf("failed to parse coverage row: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func dataToDomain(data *m_shop.Data, apartmentIDs []string) *domain.Shop {
	return domain.ReconstructShop(
		data.ShopID,
		data.SellerID.StringVal,
		domain.Details{
			Name:          data.Name,
			Description:   data.Description.StringVal,
			Phone:         data.Phone.StringVal,
			ProviderName:  data.ServiceProviderName.StringVal,
			AvailableDays: data.AvailableDays,
			AvailableFrom: data.AvailableTimeStart.StringVal,
			AvailableTo:   data.AvailableTimeEnd.StringVal,
		},
		domain.Category(data.Category),
		domain.Offering(data.Offering.StringVal),
		data.IsActive,
		apartmentIDs,
		data.Version,
		data.CreatedAt,
		data.UpdatedAt,
	)
}

func nullString(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: s != ""}
}
