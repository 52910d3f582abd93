package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apartmentcontracts "github.com/light-bringer/aptmart-service/internal/app/apartment/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/apartment/queries/list_apartments"
	"github.com/light-bringer/aptmart-service/internal/app/booking/bookingtest"
	bookingdomain "github.com/light-bringer/aptmart-service/internal/app/booking/domain"
	"github.com/light-bringer/aptmart-service/internal/app/booking/usecases/place_order"
	catalogcontracts "github.com/light-bringer/aptmart-service/internal/app/catalog/contracts"
	catalogdomain "github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/queries/list_listings"
	outboxrepo "github.com/light-bringer/aptmart-service/internal/app/outbox/repo"
	shopcontracts "github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/shop/queries/admin_overview"
	"github.com/light-bringer/aptmart-service/internal/pkg/auth"
	"github.com/light-bringer/aptmart-service/internal/pkg/chatlink"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer/committertest"
	"github.com/light-bringer/aptmart-service/internal/pkg/logging"
	"github.com/light-bringer/aptmart-service/internal/pkg/metrics"
	"github.com/light-bringer/aptmart-service/internal/pkg/money"
)

type apartmentsStub struct {
	apartmentcontracts.ReadModel
}

func (apartmentsStub) ListApartments(context.Context) ([]*apartmentcontracts.ApartmentDTO, error) {
	return []*apartmentcontracts.ApartmentDTO{{ID: "apt-1", Name: "Palm Heights"}}, nil
}

type listingsStub struct {
	bookingtest.Listings
}

func (l listingsStub) ListByShop(_ context.Context, shopID string, kind catalogdomain.Kind, _ bool) ([]*catalogcontracts.ListingDTO, error) {
	var out []*catalogcontracts.ListingDTO
	for _, dto := range l.ByID {
		if dto.ShopID == shopID && dto.Kind == string(kind) {
			out = append(out, dto)
		}
	}
	return out, nil
}

type overviewStub struct {
	bookingtest.Shops
}

func (overviewStub) Overview(context.Context) (*shopcontracts.OverviewDTO, error) {
	return &shopcontracts.OverviewDTO{Apartments: 2, Shops: 5, PendingShops: 1, Bookings: 40}, nil
}

type fixture struct {
	router http.Handler
	issuer *auth.Issuer
	rec    *committertest.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	log := logging.NewNop()

	price, err := money.Parse("60")
	require.NoError(t, err)
	shops := overviewStub{Shops: bookingtest.Shops{ByID: map[string]*shopcontracts.ShopDTO{
		"shop-1": {ID: "shop-1", Name: "Daily Needs", Phone: "98450 00000", Active: true,
			Apartments: []shopcontracts.ApartmentRef{{ID: "apt-1", Name: "Palm Heights"}}},
	}}}
	listings := bookingtest.Listings{ByID: map[string]*catalogcontracts.ListingDTO{
		"curd": {ID: "curd", ShopID: "shop-1", Kind: "product", Name: "Curd", Price: price, Available: true},
	}}

	rec := committertest.New()
	placeOrder := place_order.NewInteractor(
		bookingtest.NewFakeRepo(), shops, listings, outboxrepo.NewOutboxRepo(nil), rec, clk,
		chatlink.NewBuilder(""), bookingdomain.MessageFormat{}, &bookingtest.Placements{},
	)

	issuer := auth.NewIssuer("0123456789abcdef-secret", "aptmart", time.Hour, clk)
	router := NewRouter(Routes{
		Public: NewPublicHandler(list_apartments.NewQuery(apartmentsStub{}), nil, nil, nil, placeOrder, nil, log),
		Admin: &AdminHandler{
			login:        auth.NewAdmin("admin@aptmart.local", "", issuer),
			overview:     admin_overview.NewQuery(shops),
			listListings: list_listings.NewQuery(listingsStub{listings}),
			log:          log,
		},
		Seller:      &SellerHandler{log: log},
		Tokens:      issuer,
		Limiter:     NewRateLimiter(100, 100),
		Metrics:     metrics.New(),
		CORSOrigins: []string{"*"},
		Log:         log,
	})
	return &fixture{router: router, issuer: issuer, rec: rec}
}

func (f *fixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.RemoteAddr = "192.0.2.1:1234"
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Healthz(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(TraceHeader))
}

func TestRouter_ListApartments(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/apartments", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"apt-1","name":"Palm Heights","address":"","total_flats":0,"version":0,
		"created_at":"0001-01-01T00:00:00Z","updated_at":"0001-01-01T00:00:00Z"}]`, rec.Body.String())
}

func TestRouter_PlaceOrder(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/apartments/apt-1/shops/shop-1/orders", `{
		"customer_name": "Meera",
		"customer_phone": "90000 12345",
		"flat_number": "C-12",
		"items": [{"product_id": "curd", "quantity": 2}]
	}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body struct {
		Total   string `json:"total"`
		ChatURL string `json:"chat_url"`
		Booking struct {
			Status        string `json:"booking_status"`
			ApartmentName string `json:"apartment_name"`
		} `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "120.00", body.Total)
	assert.Equal(t, "pending", body.Booking.Status)
	assert.Equal(t, "Palm Heights", body.Booking.ApartmentName)
	assert.True(t, strings.HasPrefix(body.ChatURL, "https://wa.me/9845000000?text="))
	assert.Equal(t, 1, f.rec.Calls())
}

func TestRouter_PlaceOrderErrors(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/apartments/apt-2/shops/shop-1/orders",
		`{"customer_name":"Meera","customer_phone":"1","items":[{"product_id":"curd","quantity":1}]}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"failed_precondition","message":"shop does not serve this apartment"}}`, rec.Body.String())

	rec = f.do(http.MethodPost, "/api/v1/apartments/apt-1/shops/shop-1/orders", `{"items": 5}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, f.rec.Calls())
}

func TestRouter_AdminRoutesRequireAdmin(t *testing.T) {
	f := newFixture(t)
	adminToken, _, err := f.issuer.Issue("admin@aptmart.local", auth.RoleAdmin, "")
	require.NoError(t, err)
	sellerToken, _, err := f.issuer.Issue("98450 00000", auth.RoleSeller, "seller-1")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/v1/admin/overview", "", "").Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/api/v1/admin/overview", "", sellerToken).Code)

	rec := f.do(http.MethodGet, "/api/v1/admin/overview", "", adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"apartments":2,"shops":5,"pending_shops":1,"bookings":40}`, rec.Body.String())
}

func TestRouter_AdminShopListings(t *testing.T) {
	f := newFixture(t)
	adminToken, _, err := f.issuer.Issue("admin@aptmart.local", auth.RoleAdmin, "")
	require.NoError(t, err)

	rec := f.do(http.MethodGet, "/api/v1/admin/shops/shop-1/listings", "", adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	var products []catalogcontracts.ListingDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Curd", products[0].Name)

	rec = f.do(http.MethodGet, "/api/v1/admin/shops/shop-1/listings?kind=services", "", adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/v1/admin/shops/shop-1/listings?kind=rentals", "", adminToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_AdminLoginDisabledWithoutHash(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/admin/login", `{"email":"admin@aptmart.local","password":"x"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_SellerRoutesRejectAdmins(t *testing.T) {
	f := newFixture(t)
	adminToken, _, err := f.issuer.Issue("admin@aptmart.local", auth.RoleAdmin, "")
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/api/v1/seller/dashboard", "", adminToken).Code)
}

func TestRouter_PreflightAndUnknownRoute(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/admin/shops", nil)
	req.Header.Set("Origin", "https://app.aptmart.in")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.aptmart.in", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = f.do(http.MethodGet, "/api/v1/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"not_found"`)

	rec = f.do(http.MethodGet, "/api/v1/apartments/apt-1/shops/shop-1/orders", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"method_not_allowed"`)
}
