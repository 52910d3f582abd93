package list_listings

import (
	"context"

	"github.com/light-bringer/aptmart-service/internal/app/catalog/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
)

type Request struct {
	ShopID        string
	Kind          domain.Kind
	OnlyAvailable bool
}

// Query lists a shop's products or services ordered by name.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list listings query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute never returns a nil slice.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ListingDTO, error) {
	listings, err := q.readModel.ListByShop(ctx, req.ShopID, req.Kind, req.OnlyAvailable)
	if err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []*contracts.ListingDTO{}
	}
	return listings, nil
}
