package services

import (
	"context"
	"fmt"
	"net/http"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/aptmart-service/internal/app/apartment/queries/get_apartment"
	"github.com/light-bringer/aptmart-service/internal/app/apartment/queries/list_apartments"
	apartmentrepo "github.com/light-bringer/aptmart-service/internal/app/apartment/repo"
	"github.com/light-bringer/aptmart-service/internal/app/apartment/usecases/create_apartment"
	"github.com/light-bringer/aptmart-service/internal/app/apartment/usecases/delete_apartment"
	"github.com/light-bringer/aptmart-service/internal/app/apartment/usecases/update_apartment"
	bookingdomain "github.com/light-bringer/aptmart-service/internal/app/booking/domain"
	"github.com/light-bringer/aptmart-service/internal/app/booking/queries/list_bookings"
	bookingrepo "github.com/light-bringer/aptmart-service/internal/app/booking/repo"
	"github.com/light-bringer/aptmart-service/internal/app/booking/usecases/book_service"
	"github.com/light-bringer/aptmart-service/internal/app/booking/usecases/place_order"
	"github.com/light-bringer/aptmart-service/internal/app/booking/usecases/update_booking_status"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/queries/list_listings"
	catalogrepo "github.com/light-bringer/aptmart-service/internal/app/catalog/repo"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/usecases/add_listing"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/usecases/remove_listing"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/usecases/update_listing"
	outboxcontracts "github.com/light-bringer/aptmart-service/internal/app/outbox/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/outbox/queries/list_events"
	outboxrepo "github.com/light-bringer/aptmart-service/internal/app/outbox/repo"
	"github.com/light-bringer/aptmart-service/internal/app/outbox/usecases/cleanup_events"
	"github.com/light-bringer/aptmart-service/internal/app/outbox/usecases/relay_events"
	"github.com/light-bringer/aptmart-service/internal/app/seller/queries/seller_dashboard"
	sellerrepo "github.com/light-bringer/aptmart-service/internal/app/seller/repo"
	"github.com/light-bringer/aptmart-service/internal/app/seller/usecases/authenticate_seller"
	"github.com/light-bringer/aptmart-service/internal/app/seller/usecases/choose_seller_type"
	"github.com/light-bringer/aptmart-service/internal/app/seller/usecases/register_seller"
	"github.com/light-bringer/aptmart-service/internal/app/shop/queries/admin_overview"
	"github.com/light-bringer/aptmart-service/internal/app/shop/queries/apartment_storefront"
	"github.com/light-bringer/aptmart-service/internal/app/shop/queries/list_shops"
	"github.com/light-bringer/aptmart-service/internal/app/shop/queries/shop_storefront"
	shoprepo "github.com/light-bringer/aptmart-service/internal/app/shop/repo"
	"github.com/light-bringer/aptmart-service/internal/app/shop/usecases/assign_apartments"
	"github.com/light-bringer/aptmart-service/internal/app/shop/usecases/create_shop"
	"github.com/light-bringer/aptmart-service/internal/app/shop/usecases/delete_shop"
	"github.com/light-bringer/aptmart-service/internal/app/shop/usecases/toggle_shop_status"
	"github.com/light-bringer/aptmart-service/internal/app/shop/usecases/update_shop"
	"github.com/light-bringer/aptmart-service/internal/pkg/auth"
	"github.com/light-bringer/aptmart-service/internal/pkg/cache"
	"github.com/light-bringer/aptmart-service/internal/pkg/chatlink"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
	"github.com/light-bringer/aptmart-service/internal/pkg/config"
	"github.com/light-bringer/aptmart-service/internal/pkg/logging"
	"github.com/light-bringer/aptmart-service/internal/pkg/metrics"
	httptransport "github.com/light-bringer/aptmart-service/internal/transport/http"
	"github.com/light-bringer/aptmart-service/internal/transport/realtime"
)

const cachePrefix = "aptmart:"

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Metrics       *metrics.Metrics
	Hub           *realtime.Hub
	Limiter       *httptransport.RateLimiter
	Router        http.Handler

	Relay   *relay_events.Interactor
	Cleanup *cleanup_events.Interactor

	cache cache.Cache
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, log *logging.Logger) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)
	m := metrics.New()
	hub := realtime.NewHub(cfg.CORSOrigins, log)
	issuer := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL, clk)
	links := chatlink.NewBuilder(cfg.Booking.ChatBaseURL)
	format := bookingdomain.MessageFormat{Currency: cfg.Booking.CurrencySymbol}

	var storefrontCache cache.Cache = cache.Nop{}
	if cfg.Cache.RedisAddr != "" {
		redisCache, err := cache.Dial(ctx, cfg.Cache.RedisAddr, cachePrefix)
		if err != nil {
			spannerClient.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		storefrontCache = redisCache
	} else {
		log.Info("REDIS_ADDR not set, storefront cache disabled")
	}

	// 3. Create repositories
	outboxRepo := outboxrepo.NewOutboxRepo(spannerClient)
	eventsReadModel := outboxrepo.NewEventsReadModel(spannerClient)
	apartmentRepo := apartmentrepo.NewApartmentRepo(spannerClient)
	apartmentReadModel := apartmentrepo.NewReadModel(spannerClient)
	sellerRepo := sellerrepo.NewSellerRepo(spannerClient)
	shopRepo := shoprepo.NewShopRepo(spannerClient)
	shopReadModel := shoprepo.NewReadModel(spannerClient)
	listingRepo := catalogrepo.NewListingRepo(spannerClient)
	listingReadModel := catalogrepo.NewReadModel(spannerClient)
	shopResolver := catalogrepo.NewShopResolver(sellerRepo, shopRepo)
	bookingRepo := bookingrepo.NewBookingRepo(spannerClient)
	bookingReadModel := bookingrepo.NewReadModel(spannerClient)

	// 4. Create command use cases (write operations)
	createApartment := create_apartment.NewInteractor(apartmentRepo, outboxRepo, comm, clk)
	updateApartment := update_apartment.NewInteractor(apartmentRepo, outboxRepo, comm, clk)
	deleteApartment := delete_apartment.NewInteractor(apartmentRepo, outboxRepo, comm, clk)

	registerSeller := register_seller.NewInteractor(sellerRepo, shopRepo, outboxRepo, comm, clk)
	authenticateSeller := authenticate_seller.NewInteractor(sellerRepo, issuer)
	chooseSellerType := choose_seller_type.NewInteractor(sellerRepo, shopRepo, outboxRepo, comm, clk)

	createShop := create_shop.NewInteractor(shopRepo, outboxRepo, comm, clk)
	updateShop := update_shop.NewInteractor(shopRepo, outboxRepo, comm, clk)
	toggleShop := toggle_shop_status.NewInteractor(shopRepo, outboxRepo, comm, clk)
	assignApartments := assign_apartments.NewInteractor(shopRepo, outboxRepo, comm, clk)
	deleteShop := delete_shop.NewInteractor(shopRepo, outboxRepo, comm, clk)

	addListing := add_listing.NewInteractor(listingRepo, shopResolver, outboxRepo, comm, clk)
	updateListing := update_listing.NewInteractor(listingRepo, shopResolver, outboxRepo, comm, clk)
	removeListing := remove_listing.NewInteractor(listingRepo, shopResolver, outboxRepo, comm, clk)

	placeOrder := place_order.NewInteractor(bookingRepo, shopReadModel, listingReadModel, outboxRepo, comm, clk, links, format, m)
	bookService := book_service.NewInteractor(bookingRepo, shopReadModel, listingReadModel, outboxRepo, comm, clk, links, format, m)
	updateBookingStatus := update_booking_status.NewInteractor(bookingRepo, outboxRepo, comm, clk)

	// 5. Create query use cases (read operations)
	listApartments := list_apartments.NewQuery(apartmentReadModel)
	getApartment := get_apartment.NewQuery(apartmentReadModel)
	apartmentStorefront := apartment_storefront.NewQuery(shopReadModel, storefrontCache, cfg.Cache.StorefrontTTL, m, log)
	shopStorefront := shop_storefront.NewQuery(shopReadModel, listingReadModel)
	listShops := list_shops.NewQuery(shopReadModel)
	listListings := list_listings.NewQuery(listingReadModel)
	overview := admin_overview.NewQuery(shopReadModel)
	sellerDashboard := seller_dashboard.NewQuery(sellerRepo, shopReadModel, listingReadModel)
	listBookings := list_bookings.NewQuery(bookingReadModel)
	listEvents := list_events.NewQuery(eventsReadModel)

	// 6. Create background workers
	publishers := []outboxcontracts.Publisher{apartment_storefront.NewInvalidator(storefrontCache), hub}
	relay := relay_events.NewInteractor(outboxRepo, comm, publishers, clk, log.WithField("component", "outbox_relay"), m)
	cleanup := cleanup_events.NewInteractor(outboxRepo, clk, log.WithField("component", "outbox_cleanup"))

	// 7. Create HTTP handlers
	limiter := httptransport.NewRateLimiter(cfg.Booking.RatePerSecond, cfg.Booking.RateBurst)
	router := httptransport.NewRouter(httptransport.Routes{
		Public: httptransport.NewPublicHandler(
			listApartments,
			getApartment,
			apartmentStorefront,
			shopStorefront,
			placeOrder,
			bookService,
			log,
		),
		Seller: httptransport.NewSellerHandler(
			registerSeller,
			authenticateSeller,
			chooseSellerType,
			sellerDashboard,
			addListing,
			updateListing,
			removeListing,
			log,
		),
		Admin: httptransport.NewAdminHandler(
			auth.NewAdmin(cfg.Auth.AdminEmail, cfg.Auth.AdminPasswordHash, issuer),
			overview,
			createApartment,
			updateApartment,
			deleteApartment,
			listShops,
			listListings,
			createShop,
			updateShop,
			deleteShop,
			toggleShop,
			assignApartments,
			listBookings,
			updateBookingStatus,
			log,
		),
		Events:      httptransport.NewEventsHandler(listEvents, log),
		BookingFeed: hub,
		Tokens:      issuer,
		Limiter:     limiter,
		Metrics:     m,
		CORSOrigins: cfg.CORSOrigins,
		Log:         log,
	})

	return &ServiceOptions{
		SpannerClient: spannerClient,
		Metrics:       m,
		Hub:           hub,
		Limiter:       limiter,
		Router:        router,
		Relay:         relay,
		Cleanup:       cleanup,
		cache:         storefrontCache,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.Hub != nil {
		s.Hub.Close()
	}
	if closer, ok := s.cache.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
