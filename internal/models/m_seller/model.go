package m_seller

import "cloud.google.com/go/spanner"

// Model builds mutations for the sellers table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates an insert mutation. A duplicate phone fails the commit on the unique index.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns, []interface{}{
		data.SellerID,
		data.Phone,
		data.PasswordHash,
		data.ServiceProviderName,
		data.SellerType,
		spanner.CommitTimestamp,
		spanner.CommitTimestamp,
	})
}

// UpdateMut creates an update mutation for the given columns.
func (m *Model) UpdateMut(sellerID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}
	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := []string{SellerID}
	values := []interface{}{sellerID}
	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}
	return spanner.Update(TableName, columns, values)
}
