package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/vendora/commerce-backend/internal/clock"
	"github.com/vendora/commerce-backend/internal/models"
)

type ShipmentRepo interface {
	Create(ctx context.Context, s models.Shipment) error
	GetByID(ctx context.Context, id uuid.UUID) (models.Shipment, error)
	Update(ctx context.Context, s models.Shipment) error
}

type ShipmentService struct {
	shipmentRepo ShipmentRepo
	orderRepo    PaymentOrderRepo
	clock        clock.Clock
}

func NewShipmentService(sRepo ShipmentRepo, oRepo PaymentOrderRepo, clk clock.Clock) *ShipmentService {
	return &ShipmentService{shipmentRepo: sRepo, orderRepo: oRepo, clock: clk}
}

type CreateShipmentInput struct {
	OrderID        uuid.UUID
	TrackingNumber string
}

// CreateShipment opens a pending shipment for an order, copying the order's
// addresses so later address edits do not retarget a shipment in flight.
func (s *ShipmentService) CreateShipment(ctx context.Context, in CreateShipmentInput) (models.Shipment, error) {
	order, err := s.orderRepo.GetByID(ctx, in.OrderID)
	if err != nil {
		return models.Shipment{}, err
	}

	shipment, err := models.NewShipment(order.ID, order.ShippingAddressID, order.BillingAddressID, in.TrackingNumber, s.clock.Now())
	if err != nil {
		return models.Shipment{}, err
	}
	if err := s.shipmentRepo.Create(ctx, shipment); err != nil {
		return models.Shipment{}, err
	}
	return shipment, nil
}

func (s *ShipmentService) GetShipment(ctx context.Context, id uuid.UUID) (models.Shipment, error) {
	return s.shipmentRepo.GetByID(ctx, id)
}

func (s *ShipmentService) UpdateShipment(ctx context.Context, id uuid.UUID, upd models.ShipmentUpdate) (models.Shipment, error) {
	shipment, err := s.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return models.Shipment{}, err
	}
	if err := shipment.Apply(upd, s.clock.Now()); err != nil {
		return models.Shipment{}, err
	}
	if err := s.shipmentRepo.Update(ctx, shipment); err != nil {
		return models.Shipment{}, err
	}
	return shipment, nil
}
