package authenticate_seller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/light-bringer/aptmart-service/internal/app/seller/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/seller/domain"
	"github.com/light-bringer/aptmart-service/internal/pkg/auth"
)

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(subject, role, sellerID string) (string, time.Time, error)
}

type Request struct {
	Phone    string
	Password string
}

// Result carries the session token and the signed-in seller.
type Result struct {
	Token     string
	ExpiresAt time.Time
	Seller    *domain.Seller
}

// dummyHash is compared against for unknown phones so both failure paths pay for one bcrypt run.
var dummyHash = sync.OnceValue(func() string {
	hash, _ := auth.HashPassword("aptmart-no-such-seller")
	return hash
})

// Interactor handles seller sign-in.
type Interactor struct {
	sellers       contracts.SellerRepository
	tokens        TokenIssuer
	checkPassword func(hash, password string) bool
}

// NewInteractor creates a new authenticate seller interactor.
func NewInteractor(sellers contracts.SellerRepository, tokens TokenIssuer) *Interactor {
	return &Interactor{sellers: sellers, tokens: tokens, checkPassword: auth.CheckPassword}
}

// Execute returns auth.ErrInvalidCredentials for an unknown phone and for a wrong password alike.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	seller, err := i.sellers.GetByPhone(ctx, req.Phone)
	if errors.Is(err, domain.ErrSellerNotFound) {
		i.checkPassword(dummyHash(), req.Password)
		return nil, auth.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !i.checkPassword(seller.PasswordHash(), req.Password) {
		return nil, auth.ErrInvalidCredentials
	}

	token, expires, err := i.tokens.Issue(seller.ID(), auth.RoleSeller, seller.ID())
	if err != nil {
		return nil, err
	}
	return &Result{Token: token, ExpiresAt: expires, Seller: seller}, nil
}
