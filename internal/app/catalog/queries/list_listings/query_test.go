package list_listings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/aptmart-service/internal/app/catalog/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
)

type recordingReadModel struct {
	contracts.ReadModel
	shopID        string
	kind          domain.Kind
	onlyAvailable bool
}

func (r *recordingReadModel) ListByShop(_ context.Context, shopID string, kind domain.Kind, onlyAvailable bool) ([]*contracts.ListingDTO, error) {
	r.shopID, r.kind, r.onlyAvailable = shopID, kind, onlyAvailable
	return nil, nil
}

func TestExecute(t *testing.T) {
	rm := &recordingReadModel{}

	got, err := NewQuery(rm).Execute(context.Background(), &Request{ShopID: "shop-1", Kind: domain.KindService, OnlyAvailable: true})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Equal(t, "shop-1", rm.shopID)
	assert.Equal(t, domain.KindService, rm.kind)
	assert.True(t, rm.onlyAvailable)
}
