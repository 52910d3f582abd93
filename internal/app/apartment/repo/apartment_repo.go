package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/aptmart-service/internal/app/apartment/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/apartment/domain"
	"github.com/light-bringer/aptmart-service/internal/models/m_apartment"
	"github.com/light-bringer/aptmart-service/internal/models/m_shop_apartment"
)

// ApartmentRepo implements ApartmentRepository for Spanner.
type ApartmentRepo struct {
	client   *spanner.Client
	model    *m_apartment.Model
	coverage *m_shop_apartment.Model
}

// NewApartmentRepo creates a new ApartmentRepo.
func NewApartmentRepo(client *spanner.Client) contracts.ApartmentRepository {
	return &ApartmentRepo{
		client:   client,
		model:    m_apartment.NewModel(),
		coverage: m_shop_apartment.NewModel(),
	}
}

func (r *ApartmentRepo) InsertMut(a *domain.Apartment) *spanner.Mutation {
	return r.model.InsertMut(&m_apartment.Data{
		ApartmentID: a.ID(),
		Name:        a.Name(),
		Address:     a.Address(),
		TotalFlats:  a.TotalFlats(),
		Version:     a.Version(),
	})
}

func (r *ApartmentRepo) UpdateMut(a *domain.Apartment) *spanner.Mutation {
	changes := a.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})
	if changes.Dirty(domain.FieldName) {
		updates[m_apartment.Name] = a.Name()
	}
	if changes.Dirty(domain.FieldAddress) {
		updates[m_apartment.Address] = a.Address()
	}
	if changes.Dirty(domain.FieldTotalFlats) {
		updates[m_apartment.TotalFlats] = a.TotalFlats()
	}
	updates[m_apartment.Version] = a.Version() + 1

	return r.model.UpdateMut(a.ID(), updates)
}

func (r *ApartmentRepo) DeleteMuts(apartmentID string, shopIDs []string) []*spanner.Mutation {
	muts := make([]*spanner.Mutation, 0, len(shopIDs)+1)
	for _, shopID := range shopIDs {
		muts = append(muts, r.coverage.DeleteMut(shopID, apartmentID))
	}
	return append(muts, r.model.DeleteMut(apartmentID))
}

func (r *ApartmentRepo) GetByID(ctx context.Context, apartmentID string) (*domain.Apartment, error) {
	row, err := r.client.Single().ReadRow(ctx, m_apartment.TableName, spanner.Key{apartmentID}, m_apartment.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrApartmentNotFound
		}
		return nil, fmt.Errorf("failed to read apartment: %w", err)
	}

	var data m_apartment.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse apartment: %w", err)
	}

	return domain.ReconstructApartment(
		data.ApartmentID,
		data.Name,
		data.Address,
		data.TotalFlats,
		data.Version,
		data.CreatedAt,
		data.UpdatedAt,
	), nil
}

func (r *ApartmentRepo) CoveringShopIDs(ctx context.Context, apartmentID string) ([]string, error) {
	iter := r.client.Single().ReadUsingIndex(ctx,
		m_shop_apartment.TableName,
		m_shop_apartment.ApartmentIndex,
		spanner.Key{apartmentID}.AsPrefix(),
		[]string{m_shop_apartment.ShopID},
	)
	defer iter.Stop()

	shopIDs := make([]string, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read apartment coverage: %w", err)
		}
		var shopID string
		if err := row.Column(0, &shopID); err != nil {
			return nil, fmt.Errorf("failed to parse coverage row: %w", err)
		}
		shopIDs = append(shopIDs, shopID)
	}
	return shopIDs, nil
}
