package list_apartments

import (
	"context"

	"github.com/light-bringer/aptmart-service/internal/app/apartment/contracts"
)

// Query lists all apartments ordered by name.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list apartments query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute returns every apartment. The slice is never nil.
func (q *Query) Execute(ctx context.Context) ([]*contracts.ApartmentDTO, error) {
	apartments, err := q.readModel.ListApartments(ctx)
	if err != nil {
		return nil, err
	}
	if apartments == nil {
		apartments = []*contracts.ApartmentDTO{}
	}
	return apartments, nil
}
