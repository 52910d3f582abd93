package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/aptmart-service/internal/app/catalog/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	"github.com/light-bringer/aptmart-service/internal/models/m_product"
	"github.com/light-bringer/aptmart-service/internal/models/m_service"
	"github.com/light-bringer/aptmart-service/internal/pkg/query"
)

// ReadModelImpl implements the catalog ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{client: client}
}

func (rm *ReadModelImpl) ListByShop(ctx context.Context, shopID string, kind domain.Kind, onlyAvailable bool) ([]*contracts.ListingDTO, error) {
	table, columns := tableOf(kind)
	b := query.From(table).
		Select(columns...).
		Where(query.Eq(m_product.ShopID, shopID)).
		OrderBy(m_product.Name, query.Asc)
	if onlyAvailable {
		b = b.Where(query.Eq(m_product.IsAvailable, true))
	}
	return rm.queryListings(ctx, b.Build(), kind)
}

func (rm *ReadModelImpl) GetListings(ctx context.Context, kind domain.Kind, ids []string) ([]*contracts.ListingDTO, error) {
	if len(ids) == 0 {
		return []*contracts.ListingDTO{}, nil
	}
	table, columns := tableOf(kind)
	key := m_product.ProductID
	if kind == domain.KindService {
		key = m_service.ServiceID
	}

	stmt := query.From(table).
		Select(columns...).
		Where(query.In(key, ids)).
		Build()
	return rm.queryListings(ctx, stmt, kind)
}

func (rm *ReadModelImpl) queryListings(ctx context.Context, stmt spanner.Statement, kind domain.Kind) ([]*contracts.ListingDTO, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	listings := make([]*contracts.ListingDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate %ss: %w", kind, err)
		}
		l, err := scanListing(row, kind)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, nil
}

func tableOf(kind domain.Kind) (string, []string) {
	if kind == domain.KindService {
		return m_service.TableName, m_service.Columns
	}
	return m_product.TableName, m_product.Columns
}
