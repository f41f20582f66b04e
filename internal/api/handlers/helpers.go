package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vendora/commerce-backend/internal/models"
	"github.com/vendora/commerce-backend/internal/validate"
)

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// errUnauthenticated covers requests that reach a protected handler without
// an authenticated user in context.
var errUnauthenticated = models.ErrUnauthorized

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// writeError maps domain errors to HTTP statuses and snake_case codes.
// Anything unmapped is a server fault and deliberately unspecific.
func writeError(w http.ResponseWriter, err error) {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error(), Code: "invalid_field"})
	case errors.Is(err, models.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid or missing credentials", Code: "unauthorized"})
	case errors.Is(err, models.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "resource not found", Code: "not_found"})
	case errors.Is(err, models.ErrCartExists):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "user already has an active cart", Code: "cart_exists"})
	case errors.Is(err, models.ErrCartCheckedOut):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "cart is already checked out", Code: "cart_checked_out"})
	case errors.Is(err, models.ErrEmptyCart):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "cart has no items", Code: "empty_cart"})
	case errors.Is(err, models.ErrInsufficientStock):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "not enough stock", Code: "insufficient_stock"})
	case errors.Is(err, models.ErrAmountMismatch):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "payment amount does not match order total", Code: "amount_mismatch"})
	case errors.Is(err, models.ErrCouponExpired):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "coupon has expired", Code: "coupon_expired"})
	case errors.Is(err, models.ErrCouponExhausted):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "coupon usage limit reached", Code: "coupon_exhausted"})
	case errors.Is(err, models.ErrMinOrderNotMet):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "order total below coupon minimum", Code: "min_order_not_met"})
	case errors.Is(err, models.ErrConflict):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "resource already exists", Code: "conflict"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error", Code: "internal_error"})
	}
}

func badRequest(w http.ResponseWriter, code, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg, Code: code})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		badRequest(w, "invalid_body", "request body is not valid JSON")
		return false
	}
	return true
}

func urlID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		badRequest(w, "invalid_id", param+" is not a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}
