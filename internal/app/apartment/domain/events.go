package domain

import "time"

// ApartmentCreatedEvent is emitted when an apartment is registered.
type ApartmentCreatedEvent struct {
	ApartmentID string    `json:"apartment_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	TotalFlats  int64     `json:"total_flats"`
	CreatedAt   time.Time `json:"created_at"`
}

func (e *ApartmentCreatedEvent) EventType() string   { return "apartment.created" }
func (e *ApartmentCreatedEvent) AggregateID() string { return e.ApartmentID }

// ApartmentUpdatedEvent is emitted when apartment details change.
type ApartmentUpdatedEvent struct {
	ApartmentID  string    `json:"apartment_id"`
	ApartmentIDs []string  `json:"apartment_ids"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	TotalFlats   int64     `json:"total_flats"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (e *ApartmentUpdatedEvent) EventType() string   { return "apartment.updated" }
func (e *ApartmentUpdatedEvent) AggregateID() string { return e.ApartmentID }

// ApartmentDeletedEvent is emitted when an apartment and its coverage rows are removed.
type ApartmentDeletedEvent struct {
	ApartmentID  string    `json:"apartment_id"`
	ApartmentIDs []string  `json:"apartment_ids"`
	ShopIDs      []string  `json:"shop_ids"`
	DeletedAt    time.Time `json:"deleted_at"`
}

func (e *ApartmentDeletedEvent) EventType() string   { return "apartment.deleted" }
func (e *ApartmentDeletedEvent) AggregateID() string { return e.ApartmentID }
