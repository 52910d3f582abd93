package domain

import "errors"

var (
	ErrShopNotFound        = errors.New("shop not found")
	ErrShopNotActive       = errors.New("shop is not active")
	ErrShopNotInApartment  = errors.New("shop does not serve this apartment")
	ErrEmptyName           = errors.New("shop name cannot be empty")
	ErrEmptyPhone          = errors.New("shop phone cannot be empty")
	ErrInvalidCategory     = errors.New("invalid shop category")
	ErrInvalidOffering     = errors.New("offering must be products or services")
	ErrInvalidAvailableDay = errors.New("invalid available day")
	ErrInvalidTime         = errors.New("available time must be HH:MM")
	ErrInvalidTimeRange    = errors.New("available time end must be after start")
	ErrUnknownApartment    = errors.New("unknown apartment")
)
