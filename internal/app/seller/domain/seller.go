package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/light-bringer/aptmart-service/internal/pkg/changeset"
	"github.com/light-bringer/aptmart-service/internal/pkg/events"
)

// Password length bounds accepted at sign-up. bcrypt rejects input beyond 72 bytes.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// Type is what a seller offers. Empty until chosen after sign-up.
type Type string

const (
	TypeNone     Type = ""
	TypeProducts Type = "products"
	TypeServices Type = "services"
)

// ParseType accepts "products" or "services".
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeProducts:
		return TypeProducts, nil
	case TypeServices:
		return TypeServices, nil
	}
	return TypeNone, fmt.Errorf("%w: %q", ErrInvalidSellerType, s)
}

// Field names for change tracking.
const (
	FieldType = "seller_type"
)

// Seller is a shop owner who signs in with phone and password.
type Seller struct {
	events.Recorder

	id           string
	phone        string
	passwordHash string
	providerName string
	sellerType   Type
	createdAt    time.Time
	updatedAt    time.Time

	changes *changeset.Tracker
}

// ValidatePassword checks a plain password before it is hashed.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrWeakPassword
	}
	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

// NormalizePhone trims surrounding whitespace. Sellers sign in with the phone as typed at sign-up.
func NormalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}

// NewSeller creates a seller with an already hashed password.
func NewSeller(id, phone, passwordHash, providerName string, now time.Time) (*Seller, error) {
	phone = NormalizePhone(phone)
	if phone == "" {
		return nil, ErrEmptyPhone
	}
	providerName = strings.TrimSpace(providerName)
	if providerName == "" {
		return nil, ErrEmptyProviderName
	}

	s := &Seller{
		id:           id,
		phone:        phone,
		passwordHash: passwordHash,
		providerName: providerName,
		createdAt:    now,
		updatedAt:    now,
		changes:      changeset.New(),
	}
	s.Record(&SellerRegisteredEvent{SellerID: id, ProviderName: providerName, RegisteredAt: now})
	return s, nil
}

// ReconstructSeller rebuilds a Seller loaded from storage.
func ReconstructSeller(id, phone, passwordHash, providerName string, sellerType Type, createdAt, updatedAt time.Time) *Seller {
	return &Seller{
		id:           id,
		phone:        phone,
		passwordHash: passwordHash,
		providerName: providerName,
		sellerType:   sellerType,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		changes:      changeset.New(),
	}
}

func (s *Seller) ID() string                  { return s.id }
func (s *Seller) Phone() string               { return s.phone }
func (s *Seller) PasswordHash() string        { return s.passwordHash }
func (s *Seller) ProviderName() string        { return s.providerName }
func (s *Seller) Type() Type                  { return s.sellerType }
func (s *Seller) NeedsType() bool             { return s.sellerType == TypeNone }
func (s *Seller) CreatedAt() time.Time        { return s.createdAt }
func (s *Seller) UpdatedAt() time.Time        { return s.updatedAt }
func (s *Seller) Changes() *changeset.Tracker { return s.changes }

// ChooseType sets the seller type. Choosing the current type again is a no-op.
func (s *Seller) ChooseType(t Type, apartmentIDs []string, now time.Time) error {
	if t != TypeProducts && t != TypeServices {
		return ErrInvalidSellerType
	}
	if t == s.sellerType {
		return nil
	}
	s.sellerType = t
	s.updatedAt = now
	s.changes.MarkDirty(FieldType)
	s.Record(&SellerTypeChosenEvent{SellerID: s.id, Type: string(t), ApartmentIDs: apartmentIDs, ChosenAt: now})
	return nil
}
