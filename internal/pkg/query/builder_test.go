package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("apartments").
		Select("apartment_id", "name", "address").
		Build()

	assert.Equal(t, "SELECT apartment_id, name, address FROM apartments", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("shops").Build()

	assert.Equal(t, "SELECT * FROM shops", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("shops").
		Select("shop_id", "name").
		Where(Eq("is_active", true)).
		Where(Eq("offering", "services")).
		Build()

	assert.Equal(t, "SELECT shop_id, name FROM shops WHERE is_active = @p0 AND offering = @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": true,
		"p1": "services",
	}, stmt.Params)
}

func TestBuilder_InCondition(t *testing.T) {
	ids := []string{"shop-1", "shop-2"}
	stmt := From("shop_apartments").
		Select("shop_id", "apartment_id").
		Where(In("shop_id", ids)).
		Build()

	assert.Equal(t, "SELECT shop_id, apartment_id FROM shop_apartments WHERE shop_id IN UNNEST(@p0)", stmt.SQL)
	assert.Equal(t, ids, stmt.Params["p0"])
}

func TestBuilder_NullConditionsDoNotConsumeParams(t *testing.T) {
	stmt := From("sellers").
		Select("seller_id").
		Where(IsNull("seller_type")).
		Where(Eq("phone", "+919876543210")).
		Where(IsNotNull("password_hash")).
		Build()

	assert.Equal(t, "SELECT seller_id FROM sellers WHERE seller_type IS NULL AND phone = @p0 AND password_hash IS NOT NULL", stmt.SQL)
	assert.Len(t, stmt.Params, 1)
}

func TestBuilder_MultipleOrderTerms(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		OrderBy("name", Asc).
		OrderBy("created_at", Desc).
		Build()

	assert.Equal(t, "SELECT product_id FROM products ORDER BY name ASC, created_at DESC", stmt.SQL)
}

func TestBuilder_LimitAndOffset(t *testing.T) {
	stmt := From("bookings").
		Select("booking_id").
		OrderBy("created_at", Desc).
		Limit(20).
		Offset(40).
		Build()

	assert.Equal(t, "SELECT booking_id FROM bookings ORDER BY created_at DESC LIMIT @limit OFFSET @offset", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"limit":  int64(20),
		"offset": int64(40),
	}, stmt.Params)
}

func TestBuilder_Count(t *testing.T) {
	base := From("shops").
		Select("shop_id", "name").
		Where(Eq("is_active", false)).
		OrderBy("created_at", Desc).
		Limit(10)

	stmt := base.Count().Build()

	assert.Equal(t, "SELECT COUNT(*) FROM shops WHERE is_active = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{"p0": false}, stmt.Params)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("bookings").Select("booking_id")
	filtered := base.Where(Eq("booking_status", "pending"))

	assert.Equal(t, "SELECT booking_id FROM bookings", base.Build().SQL)
	assert.Equal(t, "SELECT booking_id FROM bookings WHERE booking_status = @p0", filtered.Build().SQL)
}

func TestCondition_Lt(t *testing.T) {
	sql, params := Lt("processed_at", "2025-01-01T00:00:00Z").SQL(3)

	assert.Equal(t, "processed_at < @p3", sql)
	assert.Equal(t, map[string]interface{}{"p3": "2025-01-01T00:00:00Z"}, params)
}

func TestBuilder_String(t *testing.T) {
	s := From("apartments").Select("name").Where(Eq("apartment_id", "apt-1")).String()

	assert.Contains(t, s, "SQL: SELECT name FROM apartments WHERE apartment_id = @p0")
	assert.Contains(t, s, "Params:")
}
