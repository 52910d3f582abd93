package m_apartment

import "cloud.google.com/go/spanner"

// Model builds mutations for the apartments table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates an insert mutation. Timestamps use the commit timestamp.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns, []interface{}{
		data.ApartmentID,
		data.Name,
		data.Address,
		data.TotalFlats,
		data.Version,
		spanner.CommitTimestamp,
		spanner.CommitTimestamp,
	})
}

// UpdateMut creates an update mutation for the given columns; updated_at is always refreshed.
func (m *Model) UpdateMut(apartmentID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}
	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := []string{ApartmentID}
	values := []interface{}{apartmentID}
	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}
	return spanner.Update(TableName, columns, values)
}

// DeleteMut creates a delete mutation.
func (m *Model) DeleteMut(apartmentID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{apartmentID})
}
