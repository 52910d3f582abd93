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
	"github.com/light-bringer/aptmart-service/internal/pkg/query"
)

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{client: client}
}

func (rm *ReadModelImpl) ListApartments(ctx context.Context) ([]*contracts.ApartmentDTO, error) {
	stmt := query.From(m_apartment.TableName).
		Select(m_apartment.Columns...).
		OrderBy(m_apartment.Name, query.Asc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	apartments := make([]*contracts.ApartmentDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate apartments: %w", err)
		}

		var data m_apartment.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse apartment: %w", err)
		}
		apartments = append(apartments, toDTO(&data))
	}
	return apartments, nil
}

func (rm *ReadModelImpl) GetApartment(ctx context.Context, apartmentID string) (*contracts.ApartmentDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_apartment.TableName, spanner.Key{apartmentID}, m_apartment.Columns)
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
	return toDTO(&data), nil
}

func toDTO(data *m_apartment.Data) *contracts.ApartmentDTO {
	return &contracts.ApartmentDTO{
		ID:         data.ApartmentID,
		Name:       data.Name,
		Address:    data.Address,
		TotalFlats: data.TotalFlats,
		Version:    data.Version,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
