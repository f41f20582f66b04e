package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendora/commerce-backend/internal/models"
	"github.com/vendora/commerce-backend/internal/service"
)

type PaymentHandler struct {
	svc *service.PaymentService
}

func NewPaymentHandler(svc *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

type createPaymentRequest struct {
	OrderID  uuid.UUID       `json:"order_id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Method   string          `json:"method,omitempty"`
}

// Create handles POST /v1/payments
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	payment, err := h.svc.CreatePayment(r.Context(), service.CreatePaymentInput{
		OrderID:  req.OrderID,
		Amount:   req.Amount,
		Currency: req.Currency,
		Method:   models.PaymentMethod(req.Method),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

// Get handles GET /v1/payments/{id}
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	payment, err := h.svc.GetPayment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

type updatePaymentStatusRequest struct {
	Status         string `json:"status"`
	ProviderStatus string `json:"provider_status,omitempty"`
}

// UpdateStatus handles PATCH /v1/payments/{id}/status
func (h *PaymentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	var req updatePaymentStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	status, err := models.ParsePaymentStatus(req.Status)
	if err != nil {
		badRequest(w, "invalid_status", err.Error())
		return
	}
	payment, err := h.svc.UpdateStatus(r.Context(), id, status, req.ProviderStatus)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}
