package m_service

// Field name constants for the services table.
const (
	TableName = "services"

	// ShopIndex is the secondary index on (shop_id, name).
	ShopIndex = "idx_services_shop"

	ServiceID   = "service_id"
	ShopID      = "shop_id"
	Name        = "name"
	Description = "description"
	Price       = "price"
	ImageURL    = "image_url"
	IsAvailable = "is_available"
	Version     = "version"
	CreatedAt   = "created_at"
	UpdatedAt   = "updated_at"
)

// Columns lists every column in Data order.
var Columns = []string{ServiceID, ShopID, Name, Description, Price, ImageURL, IsAvailable, Version, CreatedAt, UpdatedAt}
