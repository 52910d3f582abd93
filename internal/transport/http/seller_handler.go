package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	catalogdomain "github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/usecases/add_listing"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/usecases/remove_listing"
	"github.com/light-bringer/aptmart-service/internal/app/catalog/usecases/update_listing"
	"github.com/light-bringer/aptmart-service/internal/app/seller/queries/seller_dashboard"
	"github.com/light-bringer/aptmart-service/internal/app/seller/usecases/authenticate_seller"
	"github.com/light-bringer/aptmart-service/internal/app/seller/usecases/choose_seller_type"
	"github.com/light-bringer/aptmart-service/internal/app/seller/usecases/register_seller"
	shopcontracts "github.com/light-bringer/aptmart-service/internal/app/shop/contracts"
	"github.com/light-bringer/aptmart-service/internal/pkg/auth"
	"github.com/light-bringer/aptmart-service/internal/pkg/logging"
	"github.com/light-bringer/aptmart-service/internal/pkg/money"
)

// SellerHandler serves seller sign-up, sign-in and the seller console.
type SellerHandler struct {
	register      *register_seller.Interactor
	authenticate  *authenticate_seller.Interactor
	chooseType    *choose_seller_type.Interactor
	dashboard     *seller_dashboard.Query
	addListing    *add_listing.Interactor
	updateListing *update_listing.Interactor
	removeListing *remove_listing.Interactor
	log           *logging.Logger
}

// NewSellerHandler creates a new seller handler.
func NewSellerHandler(
	register *register_seller.Interactor,
	authenticate *authenticate_seller.Interactor,
	chooseType *choose_seller_type.Interactor,
	dashboard *seller_dashboard.Query,
	addListing *add_listing.Interactor,
	updateListing *update_listing.Interactor,
	removeListing *remove_listing.Interactor,
	log *logging.Logger,
) *SellerHandler {
	return &SellerHandler{
		register:      register,
		authenticate:  authenticate,
		chooseType:    chooseType,
		dashboard:     dashboard,
		addListing:    addListing,
		updateListing: updateListing,
		removeListing: removeListing,
		log:           log,
	}
}

type signupBody struct {
	Phone        string   `json:"phone"`
	Password     string   `json:"password"`
	ProviderName string   `json:"service_provider_name"`
	ApartmentIDs []string `json:"apartment_ids"`
	Shop         struct {
		Name          string   `json:"name"`
		Description   string   `json:"description"`
		Category      string   `json:"category"`
		AvailableDays []string `json:"available_days"`
		AvailableFrom string   `json:"available_time_start"`
		AvailableTo   string   `json:"available_time_end"`
	} `json:"shop"`
}

type signupView struct {
	Seller seller_dashboard.SellerDTO `json:"seller"`
	Shop   *shopcontracts.ShopDTO     `json:"shop"`
}

func (h *SellerHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var body signupBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := h.register.Execute(r.Context(), &register_seller.Request{
		Phone:        body.Phone,
		Password:     body.Password,
		ProviderName: body.ProviderName,
		ApartmentIDs: body.ApartmentIDs,
		Shop: register_seller.ShopRequest{
			Name:          body.Shop.Name,
			Description:   body.Shop.Description,
			Category:      body.Shop.Category,
			AvailableDays: body.Shop.AvailableDays,
			AvailableFrom: body.Shop.AvailableFrom,
			AvailableTo:   body.Shop.AvailableTo,
		},
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, signupView{Seller: sellerToView(res.Seller), Shop: shopToView(res.Shop)})
}

type loginBody struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type tokenView struct {
	Token     string                      `json:"token"`
	ExpiresAt time.Time                   `json:"expires_at,omitempty"`
	Seller    *seller_dashboard.SellerDTO `json:"seller,omitempty"`
}

func (h *SellerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := h.authenticate.Execute(r.Context(), &authenticate_seller.Request{Phone: body.Phone, Password: body.Password})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	seller := sellerToView(res.Seller)
	writeJSON(w, http.StatusOK, tokenView{Token: res.Token, ExpiresAt: res.ExpiresAt, Seller: &seller})
}

func (h *SellerHandler) ChooseType(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Type string `json:"seller_type"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	seller, err := h.chooseType.Execute(r.Context(), &choose_seller_type.Request{SellerID: sellerID(r), Type: body.Type})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, sellerToView(seller))
}

func (h *SellerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	res, err := h.dashboard.Execute(r.Context(), sellerID(r))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type listingBody struct {
	Kind        string       `json:"kind"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       *money.Money `json:"price"`
	ImageURL    string       `json:"image_url"`
	Available   *bool        `json:"is_available"`
	Version     int64        `json:"version"`
}

// fields defaults availability to true.
func (b listingBody) fields() catalogdomain.Fields {
	available := true
	if b.Available != nil {
		available = *b.Available
	}
	return catalogdomain.Fields{
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
		ImageURL:    b.ImageURL,
		Available:   available,
	}
}

func (h *SellerHandler) AddListing(w http.ResponseWriter, r *http.Request) {
	var body listingBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	listing, err := h.addListing.Execute(r.Context(), &add_listing.Request{
		SellerID: sellerID(r),
		Kind:     body.Kind,
		Fields:   body.fields(),
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, listingToView(listing))
}

func (h *SellerHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	var body listingBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	listing, err := h.updateListing.Execute(r.Context(), &update_listing.Request{
		SellerID:  sellerID(r),
		Kind:      body.Kind,
		ListingID: mux.Vars(r)["id"],
		Fields:    body.fields(),
		Version:   body.Version,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listingToView(listing))
}

// RemoveListing reads the listing kind from the "kind" query parameter.
func (h *SellerHandler) RemoveListing(w http.ResponseWriter, r *http.Request) {
	err := h.removeListing.Execute(r.Context(), &remove_listing.Request{
		SellerID:  sellerID(r),
		Kind:      r.URL.Query().Get("kind"),
		ListingID: mux.Vars(r)["id"],
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func sellerID(r *http.Request) string {
	if c, ok := ClaimsFrom(r.Context()); ok && c.Role == auth.RoleSeller {
		return c.SellerID
	}
	return ""
}
