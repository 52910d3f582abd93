package domain

import "time"

// ListingAddedEvent is emitted when a seller adds a product or service.
type ListingAddedEvent struct {
	ListingID string    `json:"listing_id"`
	ShopID    string    `json:"shop_id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	AddedAt   time.Time `json:"added_at"`
}

func (e *ListingAddedEvent) EventType() string   { return "listing.added" }
func (e *ListingAddedEvent) AggregateID() string { return e.ListingID }

// ListingUpdatedEvent is emitted when listing details change.
type ListingUpdatedEvent struct {
	ListingID string    `json:"listing_id"`
	ShopID    string    `json:"shop_id"`
	Kind      string    `json:"kind"`
	Fields    []string  `json:"fields"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *ListingUpdatedEvent) EventType() string   { return "listing.updated" }
func (e *ListingUpdatedEvent) AggregateID() string { return e.ListingID }

// ListingRemovedEvent is emitted when a seller removes a listing.
type ListingRemovedEvent struct {
	ListingID string    `json:"listing_id"`
	ShopID    string    `json:"shop_id"`
	Kind      string    `json:"kind"`
	RemovedAt time.Time `json:"removed_at"`
}

func (e *ListingRemovedEvent) EventType() string   { return "listing.removed" }
func (e *ListingRemovedEvent) AggregateID() string { return e.ListingID }
