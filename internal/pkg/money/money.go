// Package money provides exact decimal amounts backed by big.Rat.
// Values map to Spanner NUMERIC columns and render with two decimals.
package money

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// decimal is a non-negative amount with at most two fraction digits.
var decimal = regexp.MustCompile(`^\d{1,12}(\.\d{1,2})?$`)

// ErrInvalidAmount is returned when a string cannot be parsed as a decimal amount.
var ErrInvalidAmount = errors.New("invalid amount")

// Money is an immutable decimal amount. The zero value is not usable; use Zero.
type Money struct {
	rat *big.Rat
}

// Zero returns a zero amount.
func Zero() *Money {
	return &Money{rat: new(big.Rat)}
}

// New creates Money from numerator and denominator.
// Example: New(24950, 100) is 249.50.
func New(numerator, denominator int64) (*Money, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// FromRat copies r into a new Money. A nil r yields zero.
func FromRat(r *big.Rat) *Money {
	if r == nil {
		return Zero()
	}
	return &Money{rat: new(big.Rat).Set(r)}
}

// Parse reads a decimal string such as "120", "99.5" or "1,299.00".
// Fractions, exponents, signs and more than two decimals are rejected.
func Parse(s string) (*Money, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return nil, ErrInvalidAmount
	}
	if !decimal.MatchString(s) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return &Money{rat: r}, nil
}

// Rat returns a copy of the underlying rational, suitable for a NUMERIC column.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.rat)
}

// Numeric returns the value as a spanner-compatible big.Rat value.
func (m *Money) Numeric() big.Rat {
	return *m.Rat()
}

// Add returns m + other.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// MulInt returns m * n.
func (m *Money) MulInt(n int64) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, new(big.Rat).SetInt64(n))}
}

func (m *Money) IsZero() bool     { return m.rat.Sign() == 0 }
func (m *Money) IsPositive() bool { return m.rat.Sign() > 0 }
func (m *Money) IsNegative() bool { return m.rat.Sign() < 0 }

// Equals compares by value.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 is for display only.
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String renders the amount with two decimals.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// MarshalJSON encodes the amount as a JSON string with two decimals.
func (m *Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts a JSON string or number.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	m.rat = parsed.rat
	return nil
}
