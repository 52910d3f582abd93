package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/light-bringer/aptmart-service/internal/pkg/changeset"
	"github.com/light-bringer/aptmart-service/internal/pkg/events"
)

// Field names for change tracking
const (
	FieldName          = "name"
	FieldDescription   = "description"
	FieldCategory      = "category"
	FieldPhone         = "phone"
	FieldOffering      = "offering"
	FieldProviderName  = "service_provider_name"
	FieldAvailableDays = "available_days"
	FieldHours         = "hours"
	FieldActive        = "is_active"
)

// Details are the admin- or seller-editable attributes of a shop.
type Details struct {
	Name          string
	Description   string
	Category      string
	Phone         string
	ProviderName  string
	AvailableDays []string
	AvailableFrom string
	AvailableTo   string
}

// Shop is a seller storefront offering products or services to the apartments it covers.
type Shop struct {
	events.Recorder

	id            string
	sellerID      string
	name          string
	description   string
	category      Category
	phone         string
	offering      Offering
	providerName  string
	availableDays []string
	availableFrom string
	availableTo   string
	active        bool
	apartmentIDs  []string
	version       int64
	createdAt     time.Time
	updatedAt     time.Time

	changes *changeset.Tracker
}

// NewShop validates details and creates a shop covering apartmentIDs.
// sellerID is empty for shops created by an admin.
func NewShop(id, sellerID string, d Details, offering Offering, active bool, apartmentIDs []string, now time.Time) (*Shop, error) {
	s := &Shop{
		id:        id,
		sellerID:  sellerID,
		offering:  offering,
		active:    active,
		version:   1,
		createdAt: now,
		updatedAt: now,
		changes:   changeset.New(),
	}
	if err := s.apply(d); err != nil {
		return nil, err
	}
	s.apartmentIDs = dedupe(apartmentIDs)
	s.changes.Clear()

	s.Record(&ShopCreatedEvent{
		ShopID:       id,
		SellerID:     sellerID,
		Name:         s.name,
		Category:     string(s.category),
		Active:       active,
		ApartmentIDs: s.ApartmentIDs(),
		CreatedAt:    now,
	})
	return s, nil
}

// ReconstructShop rebuilds a Shop loaded from storage.
func ReconstructShop(
	id, sellerID string,
	d Details,
	category Category,
	offering Offering,
	active bool,
	apartmentIDs []string,
	version int64,
	createdAt, updatedAt time.Time,
) *Shop {
	return &Shop{
		id:            id,
		sellerID:      sellerID,
		name:          d.Name,
		description:   d.Description,
		category:      category,
		phone:         d.Phone,
		offering:      offering,
		providerName:  d.ProviderName,
		availableDays: d.AvailableDays,
		availableFrom: d.AvailableFrom,
		availableTo:   d.AvailableTo,
		active:        active,
		apartmentIDs:  apartmentIDs,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		changes:       changeset.New(),
	}
}

func (s *Shop) ID() string                  { return s.id }
func (s *Shop) SellerID() string            { return s.sellerID }
func (s *Shop) Name() string                { return s.name }
func (s *Shop) Description() string         { return s.description }
func (s *Shop) Category() Category          { return s.category }
func (s *Shop) Phone() string               { return s.phone }
func (s *Shop) Offering() Offering          { return s.offering }
func (s *Shop) ProviderName() string        { return s.providerName }
func (s *Shop) AvailableDays() []string     { return append([]string{}, s.availableDays...) }
func (s *Shop) AvailableFrom() string       { return s.availableFrom }
func (s *Shop) AvailableTo() string         { return s.availableTo }
func (s *Shop) Active() bool                { return s.active }
func (s *Shop) ApartmentIDs() []string      { return append([]string{}, s.apartmentIDs...) }
func (s *Shop) Version() int64              { return s.version }
func (s *Shop) CreatedAt() time.Time        { return s.createdAt }
func (s *Shop) UpdatedAt() time.Time        { return s.updatedAt }
func (s *Shop) Changes() *changeset.Tracker { return s.changes }

// Covers reports whether the shop serves apartmentID.
func (s *Shop) Covers(apartmentID string) bool {
	for _, id := range s.apartmentIDs {
		if id == apartmentID {
			return true
		}
	}
	return false
}

// Update replaces the editable details.
func (s *Shop) Update(d Details, now time.Time) error {
	if err := s.apply(d); err != nil {
		return err
	}
	if !s.changes.HasChanges() {
		return nil
	}
	s.updatedAt = now
	s.recordUpdated(now)
	return nil
}

// SetOffering changes what the shop sells.
func (s *Shop) SetOffering(o Offering, now time.Time) {
	if o == s.offering {
		return
	}
	s.offering = o
	s.changes.MarkDirty(FieldOffering)
	s.updatedAt = now
	s.recordUpdated(now)
}

// Toggle flips the active flag and returns the new value.
func (s *Shop) Toggle(now time.Time) bool {
	s.active = !s.active
	s.changes.MarkDirty(FieldActive)
	s.updatedAt = now

	if s.active {
		s.Record(&ShopActivatedEvent{ShopID: s.id, ApartmentIDs: s.ApartmentIDs(), Timestamp: now})
	} else {
		s.Record(&ShopDeactivatedEvent{ShopID: s.id, ApartmentIDs: s.ApartmentIDs(), Timestamp: now})
	}
	return s.active
}

// AssignApartments replaces the coverage set. Duplicates collapse; order follows first occurrence.
func (s *Shop) AssignApartments(apartmentIDs []string, now time.Time) {
	previous := s.ApartmentIDs()
	s.apartmentIDs = dedupe(apartmentIDs)
	s.updatedAt = now

	s.Record(&ShopCoverageChangedEvent{
		ShopID:       s.id,
		Previous:     previous,
		Current:      s.ApartmentIDs(),
		ApartmentIDs: union(previous, s.apartmentIDs),
		Timestamp:    now,
	})
}

// MarkDeleted records the removal.
func (s *Shop) MarkDeleted(now time.Time) {
	s.Record(&ShopDeletedEvent{ShopID: s.id, ApartmentIDs: s.ApartmentIDs(), DeletedAt: now})
}

func (s *Shop) apply(d Details) error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return ErrEmptyName
	}
	phone := strings.TrimSpace(d.Phone)
	if phone == "" {
		return ErrEmptyPhone
	}
	category, err := ParseCategory(d.Category)
	if err != nil {
		return err
	}
	days, err := NormalizeDays(d.AvailableDays)
	if err != nil {
		return err
	}
	from, to := strings.TrimSpace(d.AvailableFrom), strings.TrimSpace(d.AvailableTo)
	if err := ValidateHours(from, to); err != nil {
		return err
	}

	s.set(&s.name, name, FieldName)
	s.set(&s.description, strings.TrimSpace(d.Description), FieldDescription)
	s.set(&s.phone, phone, FieldPhone)
	s.set(&s.providerName, strings.TrimSpace(d.ProviderName), FieldProviderName)
	if category != s.category {
		s.category = category
		s.changes.MarkDirty(FieldCategory)
	}
	if !equalStrings(days, s.availableDays) {
		s.availableDays = days
		s.changes.MarkDirty(FieldAvailableDays)
	}
	if from != s.availableFrom || to != s.availableTo {
		s.availableFrom, s.availableTo = from, to
		s.changes.MarkDirty(FieldHours)
	}
	return nil
}

func (s *Shop) set(dst *string, v, field string) {
	if *dst != v {
		*dst = v
		s.changes.MarkDirty(field)
	}
}

func (s *Shop) recordUpdated(now time.Time) {
	fields := s.changes.Fields()
	sort.Strings(fields)
	s.Record(&ShopUpdatedEvent{ShopID: s.id, Fields: fields, ApartmentIDs: s.ApartmentIDs(), UpdatedAt: now})
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func union(a, b []string) []string {
	return dedupe(append(append([]string{}, a...), b...))
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
