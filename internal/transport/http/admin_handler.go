package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/light-bringer/aptmart-service/internal/app/apartment/usecases/create_apartment"
	"github.com/light-bringer/aptmart-service/internal/app/apartment/usecases/delete_apartment"
	"github.com/light-bringer/aptmart-service/internal/app/apartment/usecases/update_apartment"
	bookingcontracts "github.com/light-bringer/aptmart-service/internal/app/booking/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/booking/queries/list_bookings"
	"github.com/light-bringer/aptmart-service/internal/app/booking/usecases/update_booking_status"
	catalogdomain "github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/queries/list_listings"
	shopdomain "github.com/light-bringer/aptmart-service/internal/app/shop/domain"
	"github.com/light-bringer/aptmart-service/internal/app/shop/queries/admin_overview"
	"github.com/light-bringer/aptmart-service/internal/app/shop/queries/list_shops"
	"github.com/light-bringer/aptmart-service/internal/app/shop/usecases/assign_apartments"
	"github.com/light-bringer/aptmart-service/internal/app/shop/usecases/create_shop"
	"github.com/light-bringer/aptmart-service/internal/app/shop/usecases/delete_shop"
	"github.com/light-bringer/aptmart-service/internal/app/shop/usecases/toggle_shop_status"
	"github.com/light-bringer/aptmart-service/internal/app/shop/usecases/update_shop"
	"github.com/light-bringer/aptmart-service/internal/pkg/logging"
)

// AdminLogin checks operator credentials and returns a signed token.
type AdminLogin interface {
	Login(email, password string) (string, error)
}

// AdminHandler serves the admin console.
type AdminHandler struct {
	login            AdminLogin
	overview         *admin_overview.Query
	createApartment  *create_apartment.Interactor
	updateApartment  *update_apartment.Interactor
	deleteApartment  *delete_apartment.Interactor
	listShops        *list_shops.Query
	listListings     *list_listings.Query
	createShop       *create_shop.Interactor
	updateShop       *update_shop.Interactor
	deleteShop       *delete_shop.Interactor
	toggleShop       *toggle_shop_status.Interactor
	assignApartments *assign_apartments.Interactor
	listBookings     *list_bookings.Query
	updateStatus     *update_booking_status.Interactor
	log              *logging.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(
	login AdminLogin,
	overview *admin_overview.Query,
	createApartment *create_apartment.Interactor,
	updateApartment *update_apartment.Interactor,
	deleteApartment *delete_apartment.Interactor,
	listShops *list_shops.Query,
	listListings *list_listings.Query,
	createShop *create_shop.Interactor,
	updateShop *update_shop.Interactor,
	deleteShop *delete_shop.Interactor,
	toggleShop *toggle_shop_status.Interactor,
	assignApartments *assign_apartments.Interactor,
	listBookings *list_bookings.Query,
	updateStatus *update_booking_status.Interactor,
	log *logging.Logger,
) *AdminHandler {
	return &AdminHandler{
		login:            login,
		overview:         overview,
		createApartment:  createApartment,
		updateApartment:  updateApartment,
		deleteApartment:  deleteApartment,
		listShops:        listShops,
		listListings:     listListings,
		createShop:       createShop,
		updateShop:       updateShop,
		deleteShop:       deleteShop,
		toggleShop:       toggleShop,
		assignApartments: assignApartments,
		listBookings:     listBookings,
		updateStatus:     updateStatus,
		log:              log,
	}
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	token, err := h.login.Login(body.Email, body.Password)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenView{Token: token})
}

func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.overview.Execute(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

type apartmentBody struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	TotalFlats int64  `json:"total_flats"`
	Version    int64  `json:"version"`
}

func (h *AdminHandler) CreateApartment(w http.ResponseWriter, r *http.Request) {
	var body apartmentBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	apartment, err := h.createApartment.Execute(r.Context(), &create_apartment.Request{
		Name:       body.Name,
		Address:    body.Address,
		TotalFlats: body.TotalFlats,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, apartmentToView(apartment))
}

func (h *AdminHandler) UpdateApartment(w http.ResponseWriter, r *http.Request) {
	var body apartmentBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	apartment, err := h.updateApartment.Execute(r.Context(), &update_apartment.Request{
		ApartmentID: mux.Vars(r)["id"],
		Name:        body.Name,
		Address:     body.Address,
		TotalFlats:  body.TotalFlats,
		Version:     body.Version,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, apartmentToView(apartment))
}

func (h *AdminHandler) DeleteApartment(w http.ResponseWriter, r *http.Request) {
	if err := h.deleteApartment.Execute(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) ListShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.listShops.Execute(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, shops)
}

type shopBody struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Phone         string   `json:"phone"`
	ProviderName  string   `json:"service_provider_name"`
	Offering      string   `json:"offering"`
	AvailableDays []string `json:"available_days"`
	AvailableFrom string   `json:"available_time_start"`
	AvailableTo   string   `json:"available_time_end"`
	Active        bool     `json:"is_active"`
	ApartmentIDs  []string `json:"apartment_ids"`
	Version       int64    `json:"version"`
}

func (b shopBody) details() shopdomain.Details {
	return shopdomain.Details{
		Name:          b.Name,
		Description:   b.Description,
		Category:      b.Category,
		Phone:         b.Phone,
		ProviderName:  b.ProviderName,
		AvailableDays: b.AvailableDays,
		AvailableFrom: b.AvailableFrom,
		AvailableTo:   b.AvailableTo,
	}
}

func (h *AdminHandler) CreateShop(w http.ResponseWriter, r *http.Request) {
	var body shopBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	shop, err := h.createShop.Execute(r.Context(), &create_shop.Request{
		Details:      body.details(),
		Offering:     body.Offering,
		Active:       body.Active,
		ApartmentIDs: body.ApartmentIDs,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, shopToView(shop))
}

func (h *AdminHandler) UpdateShop(w http.ResponseWriter, r *http.Request) {
	var body shopBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	shop, err := h.updateShop.Execute(r.Context(), &update_shop.Request{
		ShopID:   mux.Vars(r)["id"],
		Details:  body.details(),
		Offering: body.Offering,
		Version:  body.Version,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, shopToView(shop))
}

func (h *AdminHandler) DeleteShop(w http.ResponseWriter, r *http.Request) {
	if err := h.deleteShop.Execute(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) ToggleShop(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	active, err := h.toggleShop.Execute(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "is_active": active})
}

func (h *AdminHandler) AssignApartments(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ApartmentIDs []string `json:"apartment_ids"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	shop, err := h.assignApartments.Execute(r.Context(), &assign_apartments.Request{
		ShopID:       mux.Vars(r)["id"],
		ApartmentIDs: body.ApartmentIDs,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, shopToView(shop))
}

// ShopListings shows a shop's whole catalog, unavailable items included.
func (h *AdminHandler) ShopListings(w http.ResponseWriter, r *http.Request) {
	kind := catalogdomain.KindProduct
	if raw := r.URL.Query().Get("kind"); raw != "" {
		k, err := catalogdomain.ParseKind(raw)
		if err != nil {
			writeError(w, r, h.log, err)
			return
		}
		kind = k
	}

	listings, err := h.listListings.Execute(r.Context(), &list_listings.Request{
		ShopID: mux.Vars(r)["id"],
		Kind:   kind,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	q := r.URL.Query()
	bookings, err := h.listBookings.Execute(r.Context(), bookingcontracts.Filter{
		ShopID: q.Get("shop_id"),
		Status: q.Get("status"),
		Limit:  limit,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *AdminHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"booking_status"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	booking, err := h.updateStatus.Execute(r.Context(), &update_booking_status.Request{
		BookingID: mux.Vars(r)["id"],
		Status:    body.Status,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":             booking.ID(),
		"booking_status": booking.Status(),
		"updated_at":     booking.UpdatedAt(),
	})
}
