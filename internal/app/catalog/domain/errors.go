package domain

import "errors"

var (
	ErrListingNotFound    = errors.New("listing not found")
	ErrEmptyName          = errors.New("listing name cannot be empty")
	ErrInvalidPrice       = errors.New("price must be greater than zero")
	ErrInvalidKind        = errors.New("listing kind must be product or service")
	ErrKindMismatch       = errors.New("listing kind does not match seller type")
	ErrListingUnavailable = errors.New("listing is not available")
)
