package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendora/commerce-backend/internal/validate"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCanceled  OrderStatus = "canceled"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCanceled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("invalid order status: %q", s)
}

type Order struct {
	ID                uuid.UUID       `json:"id"`
	UserID            uuid.UUID       `json:"user_id"`
	Status            OrderStatus     `json:"status"`
	TotalPrice        decimal.Decimal `json:"total_price"`
	ShippingAddressID uuid.UUID       `json:"shipping_address_id"`
	BillingAddressID  *uuid.UUID      `json:"billing_address_id,omitempty"`
	Items             []OrderItem     `json:"items"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// OrderItem is one product-quantity-price tuple. The price snapshot is taken
// at order time and never changes afterwards.
type OrderItem struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       uuid.UUID       `json:"order_id"`
	ProductID     uuid.UUID       `json:"product_id"`
	Quantity      int             `json:"quantity"`
	PriceSnapshot decimal.Decimal `json:"price_snapshot"`
}

func NewOrderItem(orderID, productID uuid.UUID, quantity int, priceSnapshot decimal.Decimal) (OrderItem, error) {
	if err := validate.Quantity(quantity); err != nil {
		return OrderItem{}, err
	}
	if err := validate.PriceSnapshot(priceSnapshot); err != nil {
		return OrderItem{}, err
	}
	return OrderItem{
		ID:            uuid.New(),
		OrderID:       orderID,
		ProductID:     productID,
		Quantity:      quantity,
		PriceSnapshot: priceSnapshot.Round(2),
	}, nil
}

// OrderTotal sums quantity times price snapshot over the line items using
// exact decimal arithmetic, scaled to two digits. An empty list totals zero.
func OrderTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.PriceSnapshot.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total.Round(2)
}
