package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendora/commerce-backend/internal/validate"
)

// Cart is the user's open basket. A user has at most one active cart.
type Cart struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	IsActive     bool       `json:"is_active"`
	IsCheckedOut bool       `json:"is_checked_out"`
	Items        []CartItem `json:"items"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func NewCart(userID uuid.UUID, now time.Time) Cart {
	return Cart{
		ID:        uuid.New(),
		UserID:    userID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CartItem snapshots the product price at the moment it enters the cart.
// The snapshot is immutable afterwards regardless of later price changes.
type CartItem struct {
	ID            uuid.UUID       `json:"id"`
	CartID        uuid.UUID       `json:"cart_id"`
	ProductID     uuid.UUID       `json:"product_id"`
	Quantity      int             `json:"quantity"`
	PriceSnapshot decimal.Decimal `json:"price_snapshot"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func NewCartItem(cartID, productID uuid.UUID, quantity int, priceSnapshot decimal.Decimal, now time.Time) (CartItem, error) {
	if err := validate.Quantity(quantity); err != nil {
		return CartItem{}, err
	}
	if err := validate.PriceSnapshot(priceSnapshot); err != nil {
		return CartItem{}, err
	}
	return CartItem{
		ID:            uuid.New(),
		CartID:        cartID,
		ProductID:     productID,
		Quantity:      quantity,
		PriceSnapshot: priceSnapshot.Round(2),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}
