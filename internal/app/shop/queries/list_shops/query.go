package list_shops

import (
	"context"

	"github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
)

// Query lists every shop for the admin console.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list shops query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute returns shops newest first. The slice and each shop's apartments are never nil.
func (q *Query) Execute(ctx context.Context) ([]*contracts.ShopDTO, error) {
	shops, err := q.readModel.ListShops(ctx)
	if err != nil {
		return nil, err
	}
	if shops == nil {
		shops = []*contracts.ShopDTO{}
	}
	for _, s := range shops {
		if s.Apartments == nil {
			s.Apartments = []contracts.ApartmentRef{}
		}
		if s.AvailableDays == nil {
			s.AvailableDays = []string{}
		}
	}
	return shops, nil
}
