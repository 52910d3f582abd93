package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/aptmart-service/internal/app/catalog/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	"github.com/light-bringer/aptmart-service/internal/models/m_product"
	"github.com/light-bringer/aptmart-service/internal/models/m_service"
	"github.com/light-bringer/aptmart-service/internal/pkg/money"
)

// ListingRepo implements ListingRepository over the products and services tables.
type ListingRepo struct {
	client   *spanner.Client
	products *m_product.Model
	services *m_service.Model
}

// NewListingRepo creates a new ListingRepo.
func NewListingRepo(client *spanner.Client) contracts.ListingRepository {
	return &ListingRepo{
		client:   client,
		products: m_product.NewModel(),
		services: m_service.NewModel(),
	}
}

func (r *ListingRepo) InsertMut(l *domain.Listing) *spanner.Mutation {
	if l.Kind() == domain.KindService {
		return r.services.InsertMut(&m_service.Data{
			ServiceID:   l.ID(),
			ShopID:      l.ShopID(),
			Name:        l.Name(),
			Description: nullString(l.Description()),
			Price:       l.Price().Numeric(),
			ImageURL:    nullString(l.ImageURL()),
			IsAvailable: l.Available(),
			Version:     l.Version(),
		})
	}
	return r.products.InsertMut(&m_product.Data{
		ProductID:   l.ID(),
		ShopID:      l.ShopID(),
		Name:        l.Name(),
		Description: nullString(l.Description()),
		Price:       l.Price().Numeric(),
		ImageURL:    nullString(l.ImageURL()),
		IsAvailable: l.Available(),
		Version:     l.Version(),
	})
}

// Both tables share column names apart from the key.
func (r *ListingRepo) UpdateMut(l *domain.Listing) *spanner.Mutation {
	changes := l.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})
	if changes.Dirty(domain.FieldName) {
		updates[m_product.Name] = l.Name()
	}
	if changes.Dirty(domain.FieldDescription) {
		updates[m_product.Description] = nullString(l.Description())
	}
	if changes.Dirty(domain.FieldPrice) {
		updates[m_product.Price] = l.Price().Rat()
	}
	if changes.Dirty(domain.FieldImageURL) {
		updates[m_product.ImageURL] = nullString(l.ImageURL())
	}
	if changes.Dirty(domain.FieldAvailable) {
		updates[m_product.IsAvailable] = l.Available()
	}
	updates[m_product.Version] = l.Version() + 1

	if l.Kind() == domain.KindService {
		return r.services.UpdateMut(l.ID(), updates)
	}
	return r.products.UpdateMut(l.ID(), updates)
}

func (r *ListingRepo) DeleteMut(kind domain.Kind, listingID string) *spanner.Mutation {
	if kind == domain.KindService {
		return r.services.DeleteMut(listingID)
	}
	return r.products.DeleteMut(listingID)
}

func (r *ListingRepo) GetByID(ctx context.Context, kind domain.Kind, listingID string) (*domain.Listing, error) {
	table, columns := m_product.TableName, m_product.Columns
	if kind == domain.KindService {
		table, columns = m_service.TableName, m_service.Columns
	}

	row, err := r.client.Single().ReadRow(ctx, table, spanner.Key{listingID}, columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", kind, err)
	}

	dto, err := scanListing(row, kind)
	if err != nil {
		return nil, err
	}
	return domain.ReconstructListing(dto.ID, dto.ShopID, kind, domain.Fields{
		Name:        dto.Name,
		Description: dto.Description,
		Price:       dto.Price,
		ImageURL:    dto.ImageURL,
		Available:   dto.Available,
	}, dto.Version, dto.CreatedAt, dto.UpdatedAt), nil
}

// scanListing decodes a products or services row.
func scanListing(row *spanner.Row, kind domain.Kind) (*contracts.ListingDTO, error) {
	if kind == domain.KindService {
		var data m_service.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse service: %w", err)
		}
		return &contracts.ListingDTO{
			ID:          data.ServiceID,
			ShopID:      data.ShopID,
			Kind:        string(kind),
			Name:        data.Name,
			Description: data.Description.StringVal,
			Price:       money.FromRat(&data.Price),
			ImageURL:    data.ImageURL.StringVal,
			Available:   data.IsAvailable,
			Version:     data.Version,
			CreatedAt:   data.CreatedAt,
			UpdatedAt:   data.UpdatedAt,
		}, nil
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}
	return &contracts.ListingDTO{
		ID:          data.ProductID,
		ShopID:      data.ShopID,
		Kind:        string(kind),
		Name:        data.Name,
		Description: data.Description.StringVal,
		Price:       money.FromRat(&data.Price),
		ImageURL:    data.ImageURL.StringVal,
		Available:   data.IsAvailable,
		Version:     data.Version,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}

func nullString(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: s != ""}
}
