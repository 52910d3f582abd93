package apartment_storefront

import (
	"context"
	"encoding/json"
	"fmt"

	outboxcontracts "github.com/light-bringer/aptmart-service/internal/app/outbox/contracts"
	"github.com/light-bringer/aptmart-service/internal/pkg/cache"
)

// Invalidator drops cached storefronts named by relayed events.
// Every event that can change a storefront carries an apartment_ids field.
type Invalidator struct {
	cache cache.Cache
}

// NewInvalidator creates an Invalidator over c.
func NewInvalidator(c cache.Cache) *Invalidator {
	return &Invalidator{cache: c}
}

func (i *Invalidator) Publish(ctx context.Context, n outboxcontracts.Notification) error {
	if len(n.Payload) == 0 {
		return nil
	}

	var payload struct {
		ApartmentIDs []string `json:"apartment_ids"`
	}
	if err := json.Unmarshal(n.Payload, &payload); err != nil {
		// payloads that are not objects never name apartments
		return nil
	}
	if len(payload.ApartmentIDs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(payload.ApartmentIDs))
	for _, id := range payload.ApartmentIDs {
		keys = append(keys, CacheKey(id))
	}
	if err := i.cache.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("invalidate storefronts for %s: %w", n.EventType, err)
	}
	return nil
}
