package domain

import "errors"

var (
	ErrApartmentNotFound = errors.New("apartment not found")
	ErrEmptyName         = errors.New("apartment name cannot be empty")
	ErrEmptyAddress      = errors.New("apartment address cannot be empty")
	ErrInvalidTotalFlats = errors.New("total flats cannot be negative")
)
