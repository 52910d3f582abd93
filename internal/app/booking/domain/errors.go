package domain

import "errors"

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrEmptyCustomerName  = errors.New("customer name is required")
	ErrEmptyCustomerPhone = errors.New("customer phone is required")
	ErrEmptyCart          = errors.New("order has no items")
	ErrQuantityTooLarge   = errors.New("item quantity must be at most 10000")
	ErrItemUnavailable    = errors.New("item is not available in this shop")
	ErrInvalidStatus      = errors.New("invalid booking status")
	ErrInvalidKind        = errors.New("booking kind must be order or service")
)
