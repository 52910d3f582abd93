package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
)

const testSecret = "0123456789abcdef0123"

func newTestIssuer(clk clock.Clock) *Issuer {
	return NewIssuer(testSecret, "aptmart", time.Hour, clk)
}

func TestIssueAndVerify(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	iss := newTestIssuer(clk)

	token, expires, err := iss.Issue("+919876543210", RoleSeller, "seller-1")
	require.NoError(t, err)
	assert.Equal(t, clk.Now().Add(time.Hour), expires)

	claims, err := iss.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, RoleSeller, claims.Role)
	assert.Equal(t, "seller-1", claims.SellerID)
	assert.Equal(t, "+919876543210", claims.Subject)
}

func TestVerify_Expired(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	iss := newTestIssuer(clk)

	token, _, err := iss.Issue("admin@aptmart.local", RoleAdmin, "")
	require.NoError(t, err)

	clk.Advance(2 * time.Hour)
	_, err = iss.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	token, _, err := NewIssuer("another-secret-value", "aptmart", time.Hour, clk).Issue("x", RoleAdmin, "")
	require.NoError(t, err)

	_, err = newTestIssuer(clk).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	claims := &Claims{Role: RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    "aptmart",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestIssuer(clock.NewRealClock()).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "secret124"))
	assert.False(t, CheckPassword("not-a-hash", "secret123"))
}

func TestAdminLogin(t *testing.T) {
	hash, err := HashPassword("admin-pass")
	require.NoError(t, err)
	iss := newTestIssuer(clock.NewRealClock())
	admin := NewAdmin("Admin@Aptmart.local", hash, iss)

	token, err := admin.Login(" admin@aptmart.local ", "admin-pass")
	require.NoError(t, err)
	claims, err := iss.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)

	_, err = admin.Login("admin@aptmart.local", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = NewAdmin("admin@aptmart.local", "", iss).Login("admin@aptmart.local", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
