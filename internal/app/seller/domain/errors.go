package domain

import "errors"

var (
	ErrSellerNotFound      = errors.New("seller not found")
	ErrEmptyPhone          = errors.New("phone number is required")
	ErrWeakPassword        = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong     = errors.New("password must be at most 72 bytes")
	ErrEmptyProviderName   = errors.New("service provider name is required")
	ErrInvalidSellerType   = errors.New("seller type must be products or services")
	ErrPhoneTaken          = errors.New("phone number already exists")
	ErrSellerHasNoShop     = errors.New("seller has no shop")
	ErrSellerTypeNotChosen = errors.New("seller has not chosen a type")
)
