package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendora/commerce-backend/internal/validate"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return PaymentStatus(s), nil
	}
	return "", fmt.Errorf("invalid payment status: %q", s)
}

type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodPaypal       PaymentMethod = "paypal"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentMethodCreditCard, PaymentMethodPaypal, PaymentMethodBankTransfer:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("invalid payment method: %q", s)
}

type Payment struct {
	ID             uuid.UUID       `json:"id"`
	OrderID        uuid.UUID       `json:"order_id"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Status         PaymentStatus   `json:"status"`
	Method         PaymentMethod   `json:"method"`
	ProviderRef    string          `json:"provider_ref,omitempty"`
	ProviderStatus string          `json:"provider_status,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func NewPayment(orderID uuid.UUID, amount decimal.Decimal, currency string, method PaymentMethod, now time.Time) (Payment, error) {
	if err := validate.PaymentAmount(amount); err != nil {
		return Payment{}, err
	}
	currency, err := validate.CurrencyCode(currency)
	if err != nil {
		return Payment{}, err
	}
	if method == "" {
		method = PaymentMethodCreditCard
	}
	if _, err := ParsePaymentMethod(string(method)); err != nil {
		return Payment{}, err
	}
	return Payment{
		ID:        uuid.New(),
		OrderID:   orderID,
		Amount:    amount.Round(2),
		Currency:  currency,
		Status:    PaymentStatusPending,
		Method:    method,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// AmountInCents returns the amount as an integer minor-unit value for
// payment processor APIs.
func (p Payment) AmountInCents() int64 {
	return p.Amount.Mul(hundred).IntPart()
}
