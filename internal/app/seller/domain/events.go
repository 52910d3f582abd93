package domain

import "time"

// SellerRegisteredEvent is emitted when a seller signs up.
type SellerRegisteredEvent struct {
	SellerID     string    `json:"seller_id"`
	ProviderName string    `json:"service_provider_name"`
	RegisteredAt time.Time `json:"registered_at"`
}

func (e *SellerRegisteredEvent) EventType() string   { return "seller.registered" }
func (e *SellerRegisteredEvent) AggregateID() string { return e.SellerID }

// SellerTypeChosenEvent is emitted once a seller decides between products and services.
// ApartmentIDs lists the storefronts where the seller's shops move sections.
type SellerTypeChosenEvent struct {
	SellerID     string    `json:"seller_id"`
	Type         string    `json:"seller_type"`
	ApartmentIDs []string  `json:"apartment_ids"`
	ChosenAt     time.Time `json:"chosen_at"`
}

func (e *SellerTypeChosenEvent) EventType() string   { return "seller.type_chosen" }
func (e *SellerTypeChosenEvent) AggregateID() string { return e.SellerID }
