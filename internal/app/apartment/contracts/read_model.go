package contracts

import (
	"context"
	"time"
)

// ApartmentDTO is the read-side view of an apartment.
type ApartmentDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	TotalFlats int64     `json:"total_flats"`
	Version    int64     `json:"version"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ReadModel serves apartment queries.
type ReadModel interface {
	ListApartments(ctx context.Context) ([]*ApartmentDTO, error)
	GetApartment(ctx context.Context, apartmentID string) (*ApartmentDTO, error)
}
