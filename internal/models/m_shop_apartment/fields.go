package m_shop_apartment

// Field name constants for the shop_apartments join table.
const (
	TableName = "shop_apartments"

	// ApartmentIndex is the secondary index on apartment_id.
	ApartmentIndex = "idx_shop_apartments_apartment"

	ShopID      = "shop_id"
	ApartmentID = "apartment_id"
	CreatedAt   = "created_at"
)
