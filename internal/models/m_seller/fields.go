package m_seller

// Field name constants for the sellers table.
const (
	TableName = "sellers"

	// PhoneIndex is the unique secondary index on phone.
	PhoneIndex = "idx_sellers_phone"

	SellerID            = "seller_id"
	Phone               = "phone"
	PasswordHash        = "password_hash"
	ServiceProviderName = "service_provider_name"
	SellerType          = "seller_type"
	CreatedAt           = "created_at"
	UpdatedAt           = "updated_at"
)

// Columns lists every column in Data order.
var Columns = []string{SellerID, Phone, PasswordHash, ServiceProviderName, SellerType, CreatedAt, UpdatedAt}
