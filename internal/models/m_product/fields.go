package m_product

// Field name constants for the products table.
const (
	TableName = "products"

	// ShopIndex is the secondary index on (shop_id, name).
	ShopIndex = "idx_products_shop"

	ProductID   = "product_id"
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
var Columns = []string{ProductID, ShopID, Name, Description, Price, ImageURL, IsAvailable, Version, CreatedAt, UpdatedAt}
