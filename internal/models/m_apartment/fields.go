package m_apartment

// Field name constants for the apartments table.
const (
	TableName = "apartments"

	ApartmentID = "apartment_id"
	Name        = "name"
	Address     = "address"
	TotalFlats  = "total_flats"
	Version     = "version"
	CreatedAt   = "created_at"
	UpdatedAt   = "updated_at"
)

// Columns lists every column in Data order.
var Columns = []string{ApartmentID, Name, Address, TotalFlats, Version, CreatedAt, UpdatedAt}
