package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/aptmart-service/internal/app/seller/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/seller/domain"
	"github.com/light-bringer/aptmart-service/internal/models/m_seller"
)

// SellerRepo implements SellerRepository for Spanner.
type SellerRepo struct {
	client *spanner.Client
	model  *m_seller.Model
}

// NewSellerRepo creates a new SellerRepo.
func NewSellerRepo(client *spanner.Client) contracts.SellerRepository {
	return &SellerRepo{
		client: client,
		model:  m_seller.NewModel(),
	}
}

func (r *SellerRepo) InsertMut(s *domain.Seller) *spanner.Mutation {
	return r.model.InsertMut(&m_seller.Data{
		SellerID:            s.ID(),
		Phone:               s.Phone(),
		PasswordHash:        s.PasswordHash(),
		ServiceProviderName: s.ProviderName(),
		SellerType:          spanner.NullString{StringVal: string(s.Type()), Valid: s.Type() != domain.TypeNone},
	})
}

func (r *SellerRepo) UpdateMut(s *domain.Seller) *spanner.Mutation {
	changes := s.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})
	if changes.Dirty(domain.FieldType) {
		updates[m_seller.SellerType] = spanner.NullString{StringVal: string(s.Type()), Valid: s.Type() != domain.TypeNone}
	}
	return r.model.UpdateMut(s.ID(), updates)
}

func (r *SellerRepo) GetByID(ctx context.Context, sellerID string) (*domain.Seller, error) {
	row, err := r.client.Single().ReadRow(ctx, m_seller.TableName, spanner.Key{sellerID}, m_seller.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrSellerNotFound
		}
		return nil, fmt.Errorf("failed to read seller: %w", err)
	}
	return toDomain(row)
}

func (r *SellerRepo) GetByPhone(ctx context.Context, phone string) (*domain.Seller, error) {
	iter := r.client.Single().ReadUsingIndex(ctx, m_seller.TableName, m_seller.PhoneIndex,
		spanner.Key{domain.NormalizePhone(phone)}, []string{m_seller.SellerID})
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrSellerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up seller by phone: %w", err)
	}

	var sellerID string
	if err := row.Column(0, &sellerID); err != nil {
		return nil, fmt.Errorf("failed to parse seller id: %w", err)
	}
	return r.GetByID(ctx, sellerID)
}

func toDomain(row *spanner.Row) (*domain.Seller, error) {
	var data m_seller.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse seller: %w", err)
	}
	return domain.ReconstructSeller(
		data.SellerID,
		data.Phone,
		data.PasswordHash,
		data.ServiceProviderName,
		domain.Type(data.SellerType.StringVal),
		data.CreatedAt,
		data.UpdatedAt,
	), nil
}
