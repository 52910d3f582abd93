package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/light-bringer/aptmart-service/internal/pkg/auth"
	"github.com/light-bringer/aptmart-service/internal/pkg/logging"
)

// MetricsExporter observes requests and serves the scrape endpoint.
type MetricsExporter interface {
	RequestObserver
	Handler() http.Handler
}

// Routes bundles what the router mounts.
type Routes struct {
	Public      *PublicHandler
	Seller      *SellerHandler
	Admin       *AdminHandler
	Events      *EventsHandler
	BookingFeed http.Handler

	Tokens      TokenVerifier
	Limiter     *RateLimiter
	Metrics     MetricsExporter
	CORSOrigins []string
	Log         *logging.Logger
}

// NewRouter builds the HTTP API.
func NewRouter(rt Routes) *mux.Router {
	r := mux.NewRouter()
	r.Use(Logging(rt.Log), Metrics(rt.Metrics), CORS(rt.CORSOrigins))

	// Preflight requests reach no route; CORS answers them before the 405 body.
	r.MethodNotAllowedHandler = Logging(rt.Log)(CORS(rt.CORSOrigins)(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, req, rt.Log, &apiError{Status: http.StatusMethodNotAllowed, Code: CodeMethodNotAllowed, Message: "method not allowed"})
	})))
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", rt.Metrics.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, req, rt.Log, &apiError{Status: http.StatusNotFound, Code: CodeNotFound, Message: "route not found"})
	})

	// Residents.
	api.HandleFunc("/apartments", rt.Public.ListApartments).Methods(http.MethodGet)
	api.HandleFunc("/apartments/{id}", rt.Public.GetApartment).Methods(http.MethodGet)
	api.HandleFunc("/apartments/{id}/storefront", rt.Public.ApartmentStorefront).Methods(http.MethodGet)
	api.HandleFunc("/apartments/{id}/shops/{shopId}", rt.Public.ShopStorefront).Methods(http.MethodGet)

	placement := api.PathPrefix("/apartments/{id}/shops/{shopId}").Subrouter()
	placement.Use(rt.Limiter.Middleware)
	placement.HandleFunc("/orders", rt.Public.PlaceOrder).Methods(http.MethodPost)
	placement.HandleFunc("/services/{sid}/bookings", rt.Public.BookService).Methods(http.MethodPost)

	// Sellers.
	api.HandleFunc("/sellers/signup", rt.Seller.Signup).Methods(http.MethodPost)
	api.HandleFunc("/sellers/login", rt.Seller.Login).Methods(http.MethodPost)

	seller := api.PathPrefix("/seller").Subrouter()
	seller.Use(RequireRole(rt.Tokens, auth.RoleSeller, rt.Log))
	seller.HandleFunc("/type", rt.Seller.ChooseType).Methods(http.MethodPut)
	seller.HandleFunc("/dashboard", rt.Seller.Dashboard).Methods(http.MethodGet)
	seller.HandleFunc("/listings", rt.Seller.AddListing).Methods(http.MethodPost)
	seller.HandleFunc("/listings/{id}", rt.Seller.UpdateListing).Methods(http.MethodPut)
	seller.HandleFunc("/listings/{id}", rt.Seller.RemoveListing).Methods(http.MethodDelete)

	// Admins.
	api.HandleFunc("/admin/login", rt.Admin.Login).Methods(http.MethodPost)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(RequireRole(rt.Tokens, auth.RoleAdmin, rt.Log))
	admin.HandleFunc("/overview", rt.Admin.Overview).Methods(http.MethodGet)
	admin.HandleFunc("/apartments", rt.Admin.CreateApartment).Methods(http.MethodPost)
	admin.HandleFunc("/apartments/{id}", rt.Admin.UpdateApartment).Methods(http.MethodPut)
	admin.HandleFunc("/apartments/{id}", rt.Admin.DeleteApartment).Methods(http.MethodDelete)
	admin.HandleFunc("/shops", rt.Admin.ListShops).Methods(http.MethodGet)
	admin.HandleFunc("/shops", rt.Admin.CreateShop).Methods(http.MethodPost)
	admin.HandleFunc("/shops/{id}", rt.Admin.UpdateShop).Methods(http.MethodPut)
	admin.HandleFunc("/shops/{id}", rt.Admin.DeleteShop).Methods(http.MethodDelete)
	admin.HandleFunc("/shops/{id}/toggle", rt.Admin.ToggleShop).Methods(http.MethodPost)
	admin.HandleFunc("/shops/{id}/apartments", rt.Admin.AssignApartments).Methods(http.MethodPut)
	admin.HandleFunc("/shops/{id}/listings", rt.Admin.ShopListings).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", rt.Admin.ListBookings).Methods(http.MethodGet)
	admin.Handle("/bookings/feed", rt.BookingFeed).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}/status", rt.Admin.UpdateBookingStatus).Methods(http.MethodPut)
	admin.Handle("/events", rt.Events).Methods(http.MethodGet)

	return r
}
