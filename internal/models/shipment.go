package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vendora/commerce-backend/internal/validate"
)

type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "pending"
	ShipmentStatusShipped   ShipmentStatus = "shipped"
	ShipmentStatusDelivered ShipmentStatus = "delivered"
	ShipmentStatusReturned  ShipmentStatus = "returned"
)

func ParseShipmentStatus(s string) (ShipmentStatus, error) {
	switch ShipmentStatus(s) {
	case ShipmentStatusPending, ShipmentStatusShipped, ShipmentStatusDelivered, ShipmentStatusReturned:
		return ShipmentStatus(s), nil
	}
	return "", fmt.Errorf("invalid shipment status: %q", s)
}

type Shipment struct {
	ID                uuid.UUID      `json:"id"`
	OrderID           uuid.UUID      `json:"order_id"`
	TrackingNumber    string         `json:"tracking_number"`
	Status            ShipmentStatus `json:"status"`
	ShippingAddressID uuid.UUID      `json:"shipping_address_id"`
	BillingAddressID  *uuid.UUID     `json:"billing_address_id,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func NewShipment(orderID, shippingAddressID uuid.UUID, billingAddressID *uuid.UUID, trackingNumber string, now time.Time) (Shipment, error) {
	trackingNumber, err := validate.TrackingNumber(trackingNumber)
	if err != nil {
		return Shipment{}, err
	}
	return Shipment{
		ID:                uuid.New(),
		OrderID:           orderID,
		TrackingNumber:    trackingNumber,
		Status:            ShipmentStatusPending,
		ShippingAddressID: shippingAddressID,
		BillingAddressID:  billingAddressID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

type ShipmentUpdate struct {
	TrackingNumber *string
	Status         *ShipmentStatus
}

func (s *Shipment) Apply(upd ShipmentUpdate, now time.Time) error {
	if upd.TrackingNumber != nil {
		tn, err := validate.TrackingNumber(*upd.TrackingNumber)
		if err != nil {
			return err
		}
		s.TrackingNumber = tn
	}
	if upd.Status != nil {
		if _, err := ParseShipmentStatus(string(*upd.Status)); err != nil {
			return err
		}
		s.Status = *upd.Status
	}
	s.UpdatedAt = now
	return nil
}
