package get_apartment

import (
	"context"

	"github.com/light-bringer/aptmart-service/internal/app/apartment/contracts"
)

// Query loads a single apartment.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get apartment query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute returns the apartment or domain.ErrApartmentNotFound.
func (q *Query) Execute(ctx context.Context, apartmentID string) (*contracts.ApartmentDTO, error) {
	return q.readModel.GetApartment(ctx, apartmentID)
}
