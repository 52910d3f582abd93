package authenticate_seller

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/aptmart-service/internal/app/seller/domain"
	"github.com/light-bringer/aptmart-service/internal/app/seller/sellertest"
	"github.com/light-bringer/aptmart-service/internal/pkg/auth"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
)

func setup(t *testing.T) (*Interactor, *auth.Issuer) {
	t.Helper()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)

	seller := domain.ReconstructSeller("seller-1", "9876543210", hash, "Ravi", domain.TypeProducts, now, now)
	issuer := auth.NewIssuer("a-test-secret-of-32-bytes-length", "aptmart", time.Hour, clock.NewMockClock(now))
	return NewInteractor(sellertest.NewFakeRepo(seller), issuer), issuer
}

func TestExecute_IssuesSellerToken(t *testing.T) {
	uc, issuer := setup(t)

	res, err := uc.Execute(context.Background(), &Request{Phone: " 9876543210", Password: "secret1"})
	require.NoError(t, err)

	claims, err := issuer.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleSeller, claims.Role)
	assert.Equal(t, "seller-1", claims.SellerID)
	assert.Equal(t, "seller-1", res.Seller.ID())
}

func TestExecute_SameErrorForUnknownPhoneAndWrongPassword(t *testing.T) {
	uc, _ := setup(t)

	_, errPhone := uc.Execute(context.Background(), &Request{Phone: "0000000000", Password: "secret1"})
	_, errPassword := uc.Execute(context.Background(), &Request{Phone: "9876543210", Password: "wrong!"})

	assert.ErrorIs(t, errPhone, auth.ErrInvalidCredentials)
	assert.ErrorIs(t, errPassword, auth.ErrInvalidCredentials)
	assert.Equal(t, errPhone.Error(), errPassword.Error())
}

func TestExecute_UnknownPhoneStillComparesPassword(t *testing.T) {
	uc, _ := setup(t)
	var hashes []string
	uc.checkPassword = func(hash, password string) bool {
		hashes = append(hashes, hash)
		return auth.CheckPassword(hash, password)
	}

	_, err := uc.Execute(context.Background(), &Request{Phone: "0000000000", Password: "secret1"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	require.Len(t, hashes, 1)
	assert.Equal(t, dummyHash(), hashes[0])
	assert.NotEmpty(t, hashes[0])
}
