package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/vendora/commerce-backend/internal/models"
	"github.com/vendora/commerce-backend/internal/service"
)

type ShipmentHandler struct {
	svc *service.ShipmentService
}

func NewShipmentHandler(svc *service.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{svc: svc}
}

type createShipmentRequest struct {
	OrderID        uuid.UUID `json:"order_id"`
	TrackingNumber string    `json:"tracking_number"`
}

// Create handles POST /v1/shipments
func (h *ShipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createShipmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	shipment, err := h.svc.CreateShipment(r.Context(), service.CreateShipmentInput{
		OrderID:        req.OrderID,
		TrackingNumber: req.TrackingNumber,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, shipment)
}

// Get handles GET /v1/shipments/{id}
func (h *ShipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	shipment, err := h.svc.GetShipment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shipment)
}

type updateShipmentRequest struct {
	TrackingNumber *string `json:"tracking_number,omitempty"`
	Status         *string `json:"status,omitempty"`
}

// Update handles PATCH /v1/shipments/{id}
func (h *ShipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	var req updateShipmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	upd := models.ShipmentUpdate{TrackingNumber: req.TrackingNumber}
	if req.Status != nil {
		status, err := models.ParseShipmentStatus(*req.Status)
		if err != nil {
			badRequest(w, "invalid_status", err.Error())
			return
		}
		upd.Status = &status
	}
	shipment, err := h.svc.UpdateShipment(r.Context(), id, upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shipment)
}
