package auth

import (
	"crypto/subtle"
	"strings"
)

// Admin authenticates the single operator account configured through the environment.
type Admin struct {
	email        string
	passwordHash string
	issuer       *Issuer
}

// NewAdmin creates an Admin authenticator. An empty passwordHash disables admin sign-in.
func NewAdmin(email, passwordHash string, issuer *Issuer) *Admin {
	return &Admin{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: passwordHash,
		issuer:       issuer,
	}
}

// Login checks the credentials and returns a signed admin token.
func (a *Admin) Login(email, password string) (string, error) {
	if a.passwordHash == "" {
		return "", ErrInvalidCredentials
	}
	given := strings.ToLower(strings.TrimSpace(email))
	emailOK := subtle.ConstantTimeCompare([]byte(given), []byte(a.email)) == 1
	passwordOK := CheckPassword(a.passwordHash, password)
	if !emailOK || !passwordOK {
		return "", ErrInvalidCredentials
	}

	token, _, err := a.issuer.Issue(a.email, RoleAdmin, "")
	return token, err
}
