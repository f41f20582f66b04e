package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendora/commerce-backend/internal/clock"
	"github.com/vendora/commerce-backend/internal/models"
)

type PaymentRepo interface {
	Create(ctx context.Context, p models.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (models.Payment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus, providerStatus string, now time.Time) error
}

type PaymentOrderRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (models.Order, error)
}

type PaymentService struct {
	paymentRepo PaymentRepo
	orderRepo   PaymentOrderRepo
	clock       clock.Clock
}

func NewPaymentService(pRepo PaymentRepo, oRepo PaymentOrderRepo, clk clock.Clock) *PaymentService {
	return &PaymentService{paymentRepo: pRepo, orderRepo: oRepo, clock: clk}
}

type CreatePaymentInput struct {
	OrderID  uuid.UUID
	Amount   decimal.Decimal
	Currency string
	Method   models.PaymentMethod
}

// CreatePayment records a pending payment for an order. The amount must
// match the order total exactly; partial or inflated payments are rejected.
func (s *PaymentService) CreatePayment(ctx context.Context, in CreatePaymentInput) (models.Payment, error) {
	order, err := s.orderRepo.GetByID(ctx, in.OrderID)
	if err != nil {
		return models.Payment{}, err
	}
	if !in.Amount.Equal(order.TotalPrice) {
		return models.Payment{}, models.ErrAmountMismatch
	}

	payment, err := models.NewPayment(order.ID, in.Amount, in.Currency, in.Method, s.clock.Now())
	if err != nil {
		return models.Payment{}, err
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (models.Payment, error) {
	return s.paymentRepo.GetByID(ctx, id)
}

func (s *PaymentService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus, providerStatus string) (models.Payment, error) {
	if _, err := models.ParsePaymentStatus(string(status)); err != nil {
		return models.Payment{}, err
	}
	if err := s.paymentRepo.UpdateStatus(ctx, id, status, providerStatus, s.clock.Now()); err != nil {
		return models.Payment{}, err
	}
	return s.paymentRepo.GetByID(ctx, id)
}
