package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/light-bringer/aptmart-service/internal/app/apartment/queries/get_apartment"
	"github.com/light-bringer/aptmart-service/internal/app/apartment/queries/list_apartments"
	bookingcontracts "github.com/light-bringer/aptmart-service/internal/app/booking/contracts"
	bookingdomain "github.com/light-bringer/aptmart-service/internal/app/booking/domain"
	"github.com/light-bringer/aptmart-service/internal/app/booking/usecases/book_service"
	"github.com/light-bringer/aptmart-service/internal/app/booking/usecases/place_order"
	"github.com/light-bringer/aptmart-service/internal/app/shop/queries/apartment_storefront"
	"github.com/light-bringer/aptmart-service/internal/app/shop/queries/shop_storefront"
	"github.com/light-bringer/aptmart-service/internal/pkg/logging"
	"github.com/light-bringer/aptmart-service/internal/pkg/money"
)

// PublicHandler serves the resident-facing routes. None of them require a token.
type PublicHandler struct {
	listApartments      *list_apartments.Query
	getApartment        *get_apartment.Query
	apartmentStorefront *apartment_storefront.Query
	shopStorefront      *shop_storefront.Query
	placeOrder          *place_order.Interactor
	bookService         *book_service.Interactor
	log                 *logging.Logger
}

// NewPublicHandler creates a new public handler.
func NewPublicHandler(
	listApartments *list_apartments.Query,
	getApartment *get_apartment.Query,
	apartmentStorefront *apartment_storefront.Query,
	shopStorefront *shop_storefront.Query,
	placeOrder *place_order.Interactor,
	bookService *book_service.Interactor,
	log *logging.Logger,
) *PublicHandler {
	return &PublicHandler{
		listApartments:      listApartments,
		getApartment:        getApartment,
		apartmentStorefront: apartmentStorefront,
		shopStorefront:      shopStorefront,
		placeOrder:          placeOrder,
		bookService:         bookService,
		log:                 log,
	}
}

func (h *PublicHandler) ListApartments(w http.ResponseWriter, r *http.Request) {
	apartments, err := h.listApartments.Execute(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, apartments)
}

func (h *PublicHandler) GetApartment(w http.ResponseWriter, r *http.Request) {
	apartment, err := h.getApartment.Execute(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, apartment)
}

func (h *PublicHandler) ApartmentStorefront(w http.ResponseWriter, r *http.Request) {
	storefront, err := h.apartmentStorefront.Execute(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, storefront)
}

func (h *PublicHandler) ShopStorefront(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res, err := h.shopStorefront.Execute(r.Context(), vars["id"], vars["shopId"])
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type customerBody struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	FlatNumber    string `json:"flat_number"`
	DoorNumber    string `json:"door_number"`
}

func (c customerBody) customer() bookingdomain.Customer {
	return bookingdomain.Customer{Name: c.CustomerName, Phone: c.CustomerPhone}
}

type placeOrderBody struct {
	customerBody
	Items []struct {
		ProductID string `json:"product_id"`
		Quantity  int64  `json:"quantity"`
	} `json:"items"`
}

type bookServiceBody struct {
	customerBody
	CarModel string `json:"car_model"`
	Notes    string `json:"notes"`
}

// placementView is returned after an order or booking is recorded.
type placementView struct {
	Booking   *bookingcontracts.BookingDTO `json:"booking"`
	Total     *money.Money                 `json:"total"`
	Message   string                       `json:"message"`
	ChatURL   string                       `json:"chat_url"`
	CreatedAt time.Time                    `json:"created_at"`
}

func (h *PublicHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var body placeOrderBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	vars := mux.Vars(r)
	req := &place_order.Request{
		ApartmentID: vars["id"],
		ShopID:      vars["shopId"],
		Customer:    body.customer(),
		FlatNumber:  body.FlatNumber,
		DoorNumber:  body.DoorNumber,
		Items:       make([]place_order.Item, 0, len(body.Items)),
	}
	for _, it := range body.Items {
		req.Items = append(req.Items, place_order.Item{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	res, err := h.placeOrder.Execute(r.Context(), req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, placementView{
		Booking:   bookingToView(res.Booking),
		Total:     res.Total,
		Message:   res.Message,
		ChatURL:   res.ChatURL,
		CreatedAt: res.Booking.CreatedAt(),
	})
}

func (h *PublicHandler) BookService(w http.ResponseWriter, r *http.Request) {
	var body bookServiceBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	vars := mux.Vars(r)
	res, err := h.bookService.Execute(r.Context(), &book_service.Request{
		ApartmentID: vars["id"],
		ShopID:      vars["shopId"],
		ServiceID:   vars["sid"],
		Customer:    body.customer(),
		FlatNumber:  body.FlatNumber,
		DoorNumber:  body.DoorNumber,
		CarModel:    body.CarModel,
		Notes:       body.Notes,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, placementView{
		Booking:   bookingToView(res.Booking),
		Total:     res.Total,
		Message:   res.Message,
		ChatURL:   res.ChatURL,
		CreatedAt: res.Booking.CreatedAt(),
	})
}
