package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/vendora/commerce-backend/internal/api/middleware"
	"github.com/vendora/commerce-backend/internal/service"
)

type CartHandler struct {
	svc *service.CartService
}

func NewCartHandler(svc *service.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

// Create handles POST /v1/cart
func (h *CartHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, errUnauthenticated)
		return
	}
	cart, err := h.svc.CreateCart(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cart)
}

// GetActive handles GET /v1/cart
func (h *CartHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, errUnauthenticated)
		return
	}
	cart, err := h.svc.GetActiveCart(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// List handles GET /v1/carts
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	carts, err := h.svc.ListCarts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, carts)
}

// Delete handles DELETE /v1/carts/{id}
func (h *CartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteCart(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type addItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// AddItem handles POST /v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, errUnauthenticated)
		return
	}
	var req addItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	cart, err := h.svc.AddItem(r.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}
