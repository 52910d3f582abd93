package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/light-bringer/aptmart-service/internal/pkg/changeset"
	"github.com/light-bringer/aptmart-service/internal/pkg/events"
	"github.com/light-bringer/aptmart-service/internal/pkg/money"
)

// Kind selects the products or services table.
type Kind string

const (
	KindProduct Kind = "product"
	KindService Kind = "service"
)

// ParseKind accepts product(s) or service(s).
func ParseKind(s string) (Kind, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s") {
	case string(KindProduct):
		return KindProduct, nil
	case string(KindService):
		return KindService, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Offering is the seller type or shop offering that lists this kind.
func (k Kind) Offering() string {
	return string(k) + "s"
}

// Field names for change tracking.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldImageURL    = "image_url"
	FieldAvailable   = "is_available"
)

// Fields are the seller-editable parts of a listing.
type Fields struct {
	Name        string
	Description string
	Price       *money.Money
	ImageURL    string
	Available   bool
}

// Listing is a product or service a shop offers.
type Listing struct {
	events.Recorder

	id          string
	shopID      string
	kind        Kind
	name        string
	description string
	price       *money.Money
	imageURL    string
	available   bool
	version     int64
	createdAt   time.Time
	updatedAt   time.Time

	changes *changeset.Tracker
}

// NewListing validates f and creates a listing for shopID.
func NewListing(id, shopID string, kind Kind, f Fields, now time.Time) (*Listing, error) {
	if kind != KindProduct && kind != KindService {
		return nil, ErrInvalidKind
	}
	l := &Listing{
		id:        id,
		shopID:    shopID,
		kind:      kind,
		version:   1,
		createdAt: now,
		updatedAt: now,
		changes:   changeset.New(),
	}
	if err := l.apply(f); err != nil {
		return nil, err
	}
	l.changes.Clear()

	l.Record(&ListingAddedEvent{
		ListingID: id,
		ShopID:    shopID,
		Kind:      string(kind),
		Name:      l.name,
		Price:     l.price.String(),
		AddedAt:   now,
	})
	return l, nil
}

// ReconstructListing rebuilds a Listing loaded from storage.
func ReconstructListing(id, shopID string, kind Kind, f Fields, version int64, createdAt, updatedAt time.Time) *Listing {
	return &Listing{
		id:          id,
		shopID:      shopID,
		kind:        kind,
		name:        f.Name,
		description: f.Description,
		price:       f.Price,
		imageURL:    f.ImageURL,
		available:   f.Available,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		changes:     changeset.New(),
	}
}

func (l *Listing) ID() string                  { return l.id }
func (l *Listing) ShopID() string              { return l.shopID }
func (l *Listing) Kind() Kind                  { return l.kind }
func (l *Listing) Name() string                { return l.name }
func (l *Listing) Description() string         { return l.description }
func (l *Listing) Price() *money.Money         { return l.price }
func (l *Listing) ImageURL() string            { return l.imageURL }
func (l *Listing) Available() bool             { return l.available }
func (l *Listing) Version() int64              { return l.version }
func (l *Listing) CreatedAt() time.Time        { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time        { return l.updatedAt }
func (l *Listing) Changes() *changeset.Tracker { return l.changes }

// Update replaces the editable fields and records an event when anything changed.
func (l *Listing) Update(f Fields, now time.Time) error {
	if err := l.apply(f); err != nil {
		return err
	}
	if !l.changes.HasChanges() {
		return nil
	}
	l.updatedAt = now

	fields := l.changes.Fields()
	sort.Strings(fields)
	l.Record(&ListingUpdatedEvent{ListingID: l.id, ShopID: l.shopID, Kind: string(l.kind), Fields: fields, UpdatedAt: now})
	return nil
}

// MarkRemoved records the removal.
func (l *Listing) MarkRemoved(now time.Time) {
	l.Record(&ListingRemovedEvent{ListingID: l.id, ShopID: l.shopID, Kind: string(l.kind), RemovedAt: now})
}

func (l *Listing) apply(f Fields) error {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return ErrEmptyName
	}
	if f.Price == nil || !f.Price.IsPositive() {
		return ErrInvalidPrice
	}

	if name != l.name {
		l.name = name
		l.changes.MarkDirty(FieldName)
	}
	if d := strings.TrimSpace(f.Description); d != l.description {
		l.description = d
		l.changes.MarkDirty(FieldDescription)
	}
	if l.price == nil || !f.Price.Equals(l.price) {
		l.price = f.Price
		l.changes.MarkDirty(FieldPrice)
	}
	if u := strings.TrimSpace(f.ImageURL); u != l.imageURL {
		l.imageURL = u
		l.changes.MarkDirty(FieldImageURL)
	}
	if f.Available != l.available {
		l.available = f.Available
		l.changes.MarkDirty(FieldAvailable)
	}
	return nil
}
