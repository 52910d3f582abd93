package admin_overview

import (
	"context"

	"github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
)

// Query returns the admin dashboard counters.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new admin overview query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

func (q *Query) Execute(ctx context.Context) (*contracts.OverviewDTO, error) {
	return q.readModel.Overview(ctx)
}
