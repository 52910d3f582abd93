package domain

import (
	"strings"
	"time"

	"github.com/light-bringer/aptmart-service/internal/pkg/changeset"
	"github.com/light-bringer/aptmart-service/internal/pkg/events"
)

// Field names for change tracking
const (
	FieldName       = "name"
	FieldAddress    = "address"
	FieldTotalFlats = "total_flats"
)

// Apartment is a residential community. Shops are made visible per apartment.
type Apartment struct {
	events.Recorder

	id         string
	name       string
	address    string
	totalFlats int64
	version    int64
	createdAt  time.Time
	updatedAt  time.Time

	changes *changeset.Tracker
}

// NewApartment validates and creates a new Apartment.
func NewApartment(id, name, address string, totalFlats int64, now time.Time) (*Apartment, error) {
	name, address = strings.TrimSpace(name), strings.TrimSpace(address)
	if err := validate(name, address, totalFlats); err != nil {
		return nil, err
	}

	a := &Apartment{
		id:         id,
		name:       name,
		address:    address,
		totalFlats: totalFlats,
		version:    1,
		createdAt:  now,
		updatedAt:  now,
		changes:    changeset.New(),
	}
	a.Record(&ApartmentCreatedEvent{
		ApartmentID: id,
		Name:        name,
		Address:     address,
		TotalFlats:  totalFlats,
		CreatedAt:   now,
	})
	return a, nil
}

// ReconstructApartment rebuilds an Apartment loaded from storage.
func ReconstructApartment(id, name, address string, totalFlats, version int64, createdAt, updatedAt time.Time) *Apartment {
	return &Apartment{
		id:         id,
		name:       name,
		address:    address,
		totalFlats: totalFlats,
		version:    version,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		changes:    changeset.New(),
	}
}

func (a *Apartment) ID() string                  { return a.id }
func (a *Apartment) Name() string                { return a.name }
func (a *Apartment) Address() string             { return a.address }
func (a *Apartment) TotalFlats() int64           { return a.totalFlats }
func (a *Apartment) Version() int64              { return a.version }
func (a *Apartment) CreatedAt() time.Time        { return a.createdAt }
func (a *Apartment) UpdatedAt() time.Time        { return a.updatedAt }
func (a *Apartment) Changes() *changeset.Tracker { return a.changes }

// Update replaces the editable details. Only fields that differ are marked dirty.
func (a *Apartment) Update(name, address string, totalFlats int64, now time.Time) error {
	name, address = strings.TrimSpace(name), strings.TrimSpace(address)
	if err := validate(name, address, totalFlats); err != nil {
		return err
	}

	if name != a.name {
		a.name = name
		a.changes.MarkDirty(FieldName)
	}
	if address != a.address {
		a.address = address
		a.changes.MarkDirty(FieldAddress)
	}
	if totalFlats != a.totalFlats {
		a.totalFlats = totalFlats
		a.changes.MarkDirty(FieldTotalFlats)
	}
	if !a.changes.HasChanges() {
		return nil
	}

	a.updatedAt = now
	a.Record(&ApartmentUpdatedEvent{
		ApartmentID:  a.id,
		ApartmentIDs: []string{a.id},
		Name:         a.name,
		Address:      a.address,
		TotalFlats:   a.totalFlats,
		UpdatedAt:    now,
	})
	return nil
}

// MarkDeleted records the deletion together with the shops that lose coverage.
func (a *Apartment) MarkDeleted(shopIDs []string, now time.Time) {
	a.Record(&ApartmentDeletedEvent{
		ApartmentID:  a.id,
		ApartmentIDs: []string{a.id},
		ShopIDs:      shopIDs,
		DeletedAt:    now,
	})
}

func validate(name, address string, totalFlats int64) error {
	if name == "" {
		return ErrEmptyName
	}
	if address == "" {
		return ErrEmptyAddress
	}
	if totalFlats < 0 {
		return ErrInvalidTotalFlats
	}
	return nil
}
