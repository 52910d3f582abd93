package m_shop

import "cloud.google.com/go/spanner"

// Model builds mutations for the shops table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates an insert mutation.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns, []interface{}{
		data.ShopID,
		data.SellerID,
		data.Name,
		data.Description,
		data.Category,
		data.Phone,
		data.Offering,
		data.ServiceProviderName,
		data.AvailableDays,
		data.AvailableTimeStart,
		data.AvailableTimeEnd,
		data.IsActive,
		data.Version,
		spanner.CommitTimestamp,
		spanner.CommitTimestamp,
	})
}

// UpdateMut creates an update mutation for the given columns.
func (m *Model) UpdateMut(shopID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}
	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := []string{ShopID}
	values := []interface{}{shopID}
	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}
	return spanner.Update(TableName, columns, values)
}

// DeleteMut creates a delete mutation. Products and services cascade.
func (m *Model) DeleteMut(shopID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{shopID})
}
