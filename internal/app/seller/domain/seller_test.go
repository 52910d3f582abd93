package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestNewSeller(t *testing.T) {
	s, err := NewSeller("seller-1", " 9876543210 ", "hash", " Ravi Kumar ", now)
	require.NoError(t, err)

	assert.Equal(t, "9876543210", s.Phone())
	assert.Equal(t, "Ravi Kumar", s.ProviderName())
	assert.True(t, s.NeedsType())
	require.Len(t, s.DomainEvents(), 1)
	assert.Equal(t, "seller.registered", s.DomainEvents()[0].EventType())
}

func TestNewSeller_Validation(t *testing.T) {
	_, err := NewSeller("seller-1", "  ", "hash", "Ravi", now)
	assert.ErrorIs(t, err, ErrEmptyPhone)

	_, err = NewSeller("seller-1", "9876543210", "hash", "", now)
	assert.ErrorIs(t, err, ErrEmptyProviderName)
}

func TestValidatePassword(t *testing.T) {
	assert.ErrorIs(t, ValidatePassword("12345"), ErrWeakPassword)
	assert.NoError(t, ValidatePassword("123456"))
	assert.NoError(t, ValidatePassword(strings.Repeat("a", MaxPasswordLength)))
	assert.ErrorIs(t, ValidatePassword(strings.Repeat("a", MaxPasswordLength+1)), ErrPasswordTooLong)
}

func TestChooseType(t *testing.T) {
	s := ReconstructSeller("seller-1", "9876543210", "hash", "Ravi", TypeNone, now, now)

	require.NoError(t, s.ChooseType(TypeServices, []string{"apt-1"}, now))
	assert.Equal(t, TypeServices, s.Type())
	assert.False(t, s.NeedsType())
	assert.True(t, s.Changes().Dirty(FieldType))
	require.Len(t, s.DomainEvents(), 1)

	s.ClearEvents()
	require.NoError(t, s.ChooseType(TypeServices, nil, now))
	assert.Empty(t, s.DomainEvents())

	assert.ErrorIs(t, s.ChooseType(TypeNone, nil, now), ErrInvalidSellerType)
}

func TestParseType(t *testing.T) {
	got, err := ParseType(" Products ")
	require.NoError(t, err)
	assert.Equal(t, TypeProducts, got)

	_, err = ParseType("both")
	assert.ErrorIs(t, err, ErrInvalidSellerType)
}
