package m_shop_apartment

import "cloud.google.com/go/spanner"

// Model builds mutations for the shop_apartments table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut links a shop to an apartment.
func (m *Model) InsertMut(shopID, apartmentID string) *spanner.Mutation {
	return spanner.Insert(TableName,
		[]string{ShopID, ApartmentID, CreatedAt},
		[]interface{}{shopID, apartmentID, spanner.CommitTimestamp},
	)
}

// DeleteMut removes a single link.
func (m *Model) DeleteMut(shopID, apartmentID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{shopID, apartmentID})
}

// DeleteShopMut removes every link of a shop.
func (m *Model) DeleteShopMut(shopID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{shopID}.AsPrefix())
}
