package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/vendora/commerce-backend/internal/api/middleware"
	"github.com/vendora/commerce-backend/internal/models"
	"github.com/vendora/commerce-backend/internal/service"
)

type OrderHandler struct {
	svc       *service.OrderService
	couponSvc *service.CouponService
}

func NewOrderHandler(svc *service.OrderService, couponSvc *service.CouponService) *OrderHandler {
	return &OrderHandler{svc: svc, couponSvc: couponSvc}
}

type checkoutRequest struct {
	ShippingAddressID uuid.UUID  `json:"shipping_address_id"`
	BillingAddressID  *uuid.UUID `json:"billing_address_id,omitempty"`
}

// Checkout handles POST /v1/orders/checkout
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, errUnauthenticated)
		return
	}
	var req checkoutRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	order, err := h.svc.Checkout(r.Context(), service.CheckoutInput{
		UserID:            userID,
		ShippingAddressID: req.ShippingAddressID,
		BillingAddressID:  req.BillingAddressID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// Get handles GET /v1/orders/{id}
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	order, err := h.svc.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// List handles GET /v1/orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, errUnauthenticated)
		return
	}
	orders, err := h.svc.ListOrders(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /v1/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	var req updateOrderStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	status, err := models.ParseOrderStatus(req.Status)
	if err != nil {
		badRequest(w, "invalid_status", err.Error())
		return
	}
	order, err := h.svc.UpdateStatus(r.Context(), id, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

type applyCouponRequest struct {
	Code string `json:"code"`
}

// ApplyCoupon handles POST /v1/orders/{id}/coupon
func (h *OrderHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	var req applyCouponRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	order, err := h.couponSvc.ApplyToOrder(r.Context(), id, req.Code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
