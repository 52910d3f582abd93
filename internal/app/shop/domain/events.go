package domain

import "time"

// Every shop event carries the apartments whose storefront it affects.

// ShopCreatedEvent is emitted when a shop is created by an admin or through seller sign-up.
type ShopCreatedEvent struct {
	ShopID       string    `json:"shop_id"`
	SellerID     string    `json:"seller_id,omitempty"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Active       bool      `json:"is_active"`
	ApartmentIDs []string  `json:"apartment_ids"`
	CreatedAt    time.Time `json:"created_at"`
}

func (e *ShopCreatedEvent) EventType() string   { return "shop.created" }
func (e *ShopCreatedEvent) AggregateID() string { return e.ShopID }

// ShopUpdatedEvent is emitted when shop details or its offering change.
type ShopUpdatedEvent struct {
	ShopID       string    `json:"shop_id"`
	Fields       []string  `json:"fields"`
	ApartmentIDs []string  `json:"apartment_ids"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (e *ShopUpdatedEvent) EventType() string   { return "shop.updated" }
func (e *ShopUpdatedEvent) AggregateID() string { return e.ShopID }

// ShopActivatedEvent is emitted when an admin approves or re-enables a shop.
type ShopActivatedEvent struct {
	ShopID       string    `json:"shop_id"`
	ApartmentIDs []string  `json:"apartment_ids"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *ShopActivatedEvent) EventType() string   { return "shop.activated" }
func (e *ShopActivatedEvent) AggregateID() string { return e.ShopID }

// ShopDeactivatedEvent is emitted when a shop is hidden from storefronts.
type ShopDeactivatedEvent struct {
	ShopID       string    `json:"shop_id"`
	ApartmentIDs []string  `json:"apartment_ids"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *ShopDeactivatedEvent) EventType() string   { return "shop.deactivated" }
func (e *ShopDeactivatedEvent) AggregateID() string { return e.ShopID }

// ShopCoverageChangedEvent is emitted when the set of served apartments is replaced.
// ApartmentIDs holds the union of old and new coverage.
type ShopCoverageChangedEvent struct {
	ShopID       string    `json:"shop_id"`
	Previous     []string  `json:"previous"`
	Current      []string  `json:"current"`
	ApartmentIDs []string  `json:"apartment_ids"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *ShopCoverageChangedEvent) EventType() string   { return "shop.coverage_changed" }
func (e *ShopCoverageChangedEvent) AggregateID() string { return e.ShopID }

// ShopDeletedEvent is emitted when a shop, its coverage and its listings are removed.
type ShopDeletedEvent struct {
	ShopID       string    `json:"shop_id"`
	ApartmentIDs []string  `json:"apartment_ids"`
	DeletedAt    time.Time `json:"deleted_at"`
}

func (e *ShopDeletedEvent) EventType() string   { return "shop.deleted" }
func (e *ShopDeletedEvent) AggregateID() string { return e.ShopID }
