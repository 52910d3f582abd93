package http

import (
	"errors"
	"net/http"

	apartmentdomain "github.com/light-bringer/aptmart-service/internal/app/apartment/domain"
	bookingdomain "github.com/light-bringer/aptmart-service/internal/app/booking/domain"
	catalogdomain "github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	sellerdomain "github.com/light-bringer/aptmart-service/internal/app/seller/domain"
	shopdomain "github.com/light-bringer/aptmart-service/internal/app/shop/domain"
	"github.com/light-bringer/aptmart-service/internal/pkg/auth"
	"github.com/light-bringer/aptmart-service/internal/pkg/chatlink"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
	"github.com/light-bringer/aptmart-service/internal/pkg/money"
)

// Error codes returned in the JSON error body.
const (
	CodeInvalidArgument    = "invalid_argument"
	CodeUnauthenticated    = "unauthenticated"
	CodePermissionDenied   = "permission_denied"
	CodeNotFound           = "not_found"
	CodeMethodNotAllowed   = "method_not_allowed"
	CodeAlreadyExists      = "already_exists"
	CodeConflict           = "conflict"
	CodeFailedPrecondition = "failed_precondition"
	CodeRateLimited        = "rate_limited"
	CodeInternal           = "internal"
)

// apiError is an error already shaped for the response body.
type apiError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *apiError) Error() string { return e.Message }

func badRequest(message string) *apiError {
	return &apiError{Status: http.StatusBadRequest, Code: CodeInvalidArgument, Message: message}
}

var notFound = []error{
	apartmentdomain.ErrApartmentNotFound,
	shopdomain.ErrShopNotFound,
	sellerdomain.ErrSellerNotFound,
	catalogdomain.ErrListingNotFound,
	bookingdomain.ErrBookingNotFound,
	committer.ErrRowNotFound,
}

var invalidArgument = []error{
	apartmentdomain.ErrEmptyName,
	apartmentdomain.ErrEmptyAddress,
	apartmentdomain.ErrInvalidTotalFlats,
	shopdomain.ErrEmptyName,
	shopdomain.ErrEmptyPhone,
	shopdomain.ErrInvalidCategory,
	shopdomain.ErrInvalidOffering,
	shopdomain.ErrInvalidAvailableDay,
	shopdomain.ErrInvalidTime,
	shopdomain.ErrInvalidTimeRange,
	shopdomain.ErrUnknownApartment,
	sellerdomain.ErrEmptyPhone,
	sellerdomain.ErrWeakPassword,
	sellerdomain.ErrPasswordTooLong,
	sellerdomain.ErrEmptyProviderName,
	sellerdomain.ErrInvalidSellerType,
	catalogdomain.ErrEmptyName,
	catalogdomain.ErrInvalidPrice,
	catalogdomain.ErrInvalidKind,
	bookingdomain.ErrEmptyCustomerName,
	bookingdomain.ErrEmptyCustomerPhone,
	bookingdomain.ErrEmptyCart,
	bookingdomain.ErrQuantityTooLarge,
	bookingdomain.ErrInvalidStatus,
	bookingdomain.ErrInvalidKind,
	money.ErrInvalidAmount,
	chatlink.ErrInvalidPhone,
}

var failedPrecondition = []error{
	shopdomain.ErrShopNotActive,
	shopdomain.ErrShopNotInApartment,
	sellerdomain.ErrSellerHasNoShop,
	sellerdomain.ErrSellerTypeNotChosen,
	catalogdomain.ErrKindMismatch,
	catalogdomain.ErrListingUnavailable,
	bookingdomain.ErrItemUnavailable,
}

// mapError converts an application error to a response error. Unknown errors become 500.
func mapError(err error) *apiError {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &apiError{Status: http.StatusUnauthorized, Code: CodeUnauthenticated, Message: auth.ErrInvalidCredentials.Error()}
	case errors.Is(err, auth.ErrInvalidToken):
		return &apiError{Status: http.StatusUnauthorized, Code: CodeUnauthenticated, Message: auth.ErrInvalidToken.Error()}
	case errors.Is(err, auth.ErrForbidden):
		return &apiError{Status: http.StatusForbidden, Code: CodePermissionDenied, Message: auth.ErrForbidden.Error()}
	case errors.Is(err, sellerdomain.ErrPhoneTaken):
		return &apiError{Status: http.StatusConflict, Code: CodeAlreadyExists, Message: sellerdomain.ErrPhoneTaken.Error()}
	case errors.Is(err, committer.ErrAlreadyExists):
		return &apiError{Status: http.StatusConflict, Code: CodeAlreadyExists, Message: "resource already exists"}
	case errors.Is(err, committer.ErrVersionConflict):
		return &apiError{Status: http.StatusConflict, Code: CodeConflict, Message: "resource was modified concurrently, reload and retry"}
	}

	if target := firstMatch(err, notFound); target != nil {
		return &apiError{Status: http.StatusNotFound, Code: CodeNotFound, Message: target.Error()}
	}
	if firstMatch(err, invalidArgument) != nil {
		return badRequest(err.Error())
	}
	if firstMatch(err, failedPrecondition) != nil {
		return &apiError{Status: http.StatusConflict, Code: CodeFailedPrecondition, Message: err.Error()}
	}

	return &apiError{Status: http.StatusInternalServerError, Code: CodeInternal, Message: "internal server error"}
}

func firstMatch(err error, targets []error) error {
	for _, t := range targets {
		if errors.Is(err, t) {
			return t
		}
	}
	return nil
}
