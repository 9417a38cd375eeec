package http

import (
	"errors"
	"net/http"

	"orderintake/internal/pkg/errs"
	"orderintake/internal/pkg/observability"
)

// CreateOrderRequest is the JSON body accepted by POST /api/v1/orders.
type CreateOrderRequest struct {
	FullName      string          `json:"fullName"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	DeliveryType  string          `json:"deliveryType"`
	Address       *AddressPayload `json:"address"`
	Lat           *float64        `json:"lat"`
	Lng           *float64        `json:"lng"`
	Comments      string          `json:"comments"`
	PaymentMethod string          `json:"paymentMethod"`
	Items         []ItemPayload   `json:"items"`
}

// AddressPayload carries the delivery address fields of a request.
type AddressPayload struct {
	Street     string `json:"street"`
	Floor      string `json:"floor"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
	Reference  string `json:"reference"`
}

// ItemPayload carries one cart line of a request.
type ItemPayload struct {
	ProductID  *int64  `json:"productId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

// UpdateOrderStatusRequest is the JSON body accepted by
// PATCH /api/v1/admin/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// Error codes returned in error responses. OUT_OF_ZONE is distinguishable
// from plain validation failures so clients can react to it specifically.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeOutOfZone    = "OUT_OF_ZONE"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeRateLimited  = "RATE_LIMITED"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL_ERROR"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// mapError translates a use-case error into an HTTP status and body.
// Infrastructure errors collapse into a generic 500 so internals never leak.
func mapError(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, errs.ErrOutOfServiceArea):
		return http.StatusBadRequest, ErrorResponse{Code: CodeOutOfZone, Message: err.Error()}
	case errors.Is(err, errs.ErrBusinessRule),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, ErrorResponse{Code: CodeValidation, Message: err.Error()}
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, ErrorResponse{Code: CodeNotFound, Message: err.Error()}
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, ErrorResponse{Code: CodeConflict, Message: err.Error()}
	default:
		return http.StatusInternalServerError, ErrorResponse{Code: CodeInternal, Message: "internal server error"}
	}
}

// rejectionReason maps an error to the metric label recorded for it.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, errs.ErrOutOfServiceArea):
		return observability.ReasonOutOfZone
	case errors.Is(err, errs.ErrBusinessRule),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return observability.ReasonValidation
	case errors.Is(err, errs.ErrObjectNotFound):
		return observability.ReasonNotFound
	case errors.Is(err, errs.ErrConflict):
		return observability.ReasonConflict
	default:
		return observability.ReasonInternal
	}
}
