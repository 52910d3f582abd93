package m_shop_apartment

// Data represents one coverage row.
type Data struct {
	ShopID      string `spanner:"shop_id"`
	ApartmentID string `spanner:"apartment_id"`
}
