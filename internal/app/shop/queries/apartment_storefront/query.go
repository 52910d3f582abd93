package apartment_storefront

import (
	"context"
	"errors"
	"time"

	"github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/shop/domain"
	"github.com/light-bringer/aptmart-service/internal/pkg/cache"
	"github.com/light-bringer/aptmart-service/internal/pkg/logging"
)

const keyPrefix = "storefront:"

// CacheKey is the cache entry holding an apartment's storefront.
func CacheKey(apartmentID string) string {
	return keyPrefix + apartmentID
}

// LookupRecorder counts cache hits and misses.
type LookupRecorder interface {
	CacheLookup(hit bool)
}

// Query builds what residents of one apartment see: the active shops serving it.
type Query struct {
	readModel contracts.ReadModel
	cache     cache.Cache
	ttl       time.Duration
	metrics   LookupRecorder
	logger    *logging.Logger
}

// NewQuery creates a new apartment storefront query.
func NewQuery(readModel contracts.ReadModel, c cache.Cache, ttl time.Duration, metrics LookupRecorder, logger *logging.Logger) *Query {
	return &Query{
		readModel: readModel,
		cache:     c,
		ttl:       ttl,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute returns the cached storefront or builds it from Spanner.
// Cache failures are logged and never fail the request.
func (q *Query) Execute(ctx context.Context, apartmentID string) (*contracts.StorefrontDTO, error) {
	key := CacheKey(apartmentID)

	var cached contracts.StorefrontDTO
	err := q.cache.Get(ctx, key, &cached)
	if err == nil {
		q.metrics.CacheLookup(true)
		return &cached, nil
	}
	q.metrics.CacheLookup(false)
	if !errors.Is(err, cache.ErrMiss) {
		q.logger.WithContext(ctx).WithError(err).WithField("key", key).Warn("storefront cache read failed")
	}

	apartment, shops, err := q.readModel.ActiveShopsForApartment(ctx, apartmentID)
	if err != nil {
		return nil, err
	}
	storefront := Split(apartment, shops)

	if err := q.cache.Set(ctx, key, storefront, q.ttl); err != nil {
		q.logger.WithContext(ctx).WithError(err).WithField("key", key).Warn("storefront cache write failed")
	}
	return storefront, nil
}

// Split groups shops by offering. Shops without an offering count as product shops.
func Split(apartment contracts.ApartmentRef, shops []*contracts.ShopDTO) *contracts.StorefrontDTO {
	out := &contracts.StorefrontDTO{
		Apartment:    apartment,
		ProductShops: []*contracts.ShopDTO{},
		ServiceShops: []*contracts.ShopDTO{},
	}
	for _, s := range shops {
		if s.Offering == string(domain.OfferingServices) {
			out.ServiceShops = append(out.ServiceShops, s)
		} else {
			out.ProductShops = append(out.ProductShops, s)
		}
	}
	return out
}
