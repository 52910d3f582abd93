package list_apartments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/aptmart-service/internal/app/apartment/contracts"
)

type emptyReadModel struct{ contracts.ReadModel }

func (emptyReadModel) ListApartments(context.Context) ([]*contracts.ApartmentDTO, error) {
	return nil, nil
}

func TestExecute_NeverNil(t *testing.T) {
	got, err := NewQuery(emptyReadModel{}).Execute(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
