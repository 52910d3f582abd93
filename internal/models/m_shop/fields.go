package m_shop

// Field name constants for the shops table.
const (
	TableName = "shops"

	// SellerIndex is the secondary index on seller_id.
	SellerIndex = "idx_shops_seller"

	ShopID              = "shop_id"
	SellerID            = "seller_id"
	Name                = "name"
	Description         = "description"
	Category            = "category"
	Phone               = "phone"
	Offering            = "offering"
	ServiceProviderName = "service_provider_name"
	AvailableDays       = "available_days"
	AvailableTimeStart  = "available_time_start"
	AvailableTimeEnd    = "available_time_end"
	IsActive            = "is_active"
	Version             = "version"
	CreatedAt           = "created_at"
	UpdatedAt           = "updated_at"
)

// Columns lists every column in Data order.
var Columns = []string{
	ShopID, SellerID, Name, Description, Category, Phone, Offering, ServiceProviderName,
	AvailableDays, AvailableTimeStart, AvailableTimeEnd, IsActive, Version, CreatedAt, UpdatedAt,
}
