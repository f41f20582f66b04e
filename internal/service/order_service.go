package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendora/commerce-backend/internal/clock"
	"github.com/vendora/commerce-backend/internal/models"
)

type OrderRepo interface {
	Create(ctx context.Context, tx *sql.Tx, o models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (models.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus, now time.Time) error
	UpdateTotal(ctx context.Context, tx *sql.Tx, id uuid.UUID, total decimal.Decimal, now time.Time) error
	LinkCoupon(ctx context.Context, tx *sql.Tx, orderID, couponID uuid.UUID) error
}

type StockRepo interface {
	DecrementStock(ctx context.Context, tx *sql.Tx, id uuid.UUID, quantity int) error
}

type CheckoutCartRepo interface {
	GetActiveByUser(ctx context.Context, userID uuid.UUID) (models.Cart, error)
	MarkCheckedOut(ctx context.Context, tx *sql.Tx, cartID uuid.UUID, now time.Time) error
}

type OrderService struct {
	db        *sql.DB
	orderRepo OrderRepo
	cartRepo  CheckoutCartRepo
	stockRepo StockRepo
	clock     clock.Clock
}

func NewOrderService(db *sql.DB, oRepo OrderRepo, cRepo CheckoutCartRepo, sRepo StockRepo, clk clock.Clock) *OrderService {
	return &OrderService{
		db:        db,
		orderRepo: oRepo,
		cartRepo:  cRepo,
		stockRepo: sRepo,
		clock:     clk,
	}
}

type CheckoutInput struct {
	UserID            uuid.UUID
	ShippingAddressID uuid.UUID
	BillingAddressID  *uuid.UUID
}

// Checkout converts the user's active cart into a pending order. Stock is
// decremented per line item with a conditional update, so two checkouts
// racing over the last units cannot both succeed, and the cart is closed in
// the same transaction. Any failure rolls the whole conversion back.
func (s *OrderService) Checkout(ctx context.Context, in CheckoutInput) (models.Order, error) {
	cart, err := s.cartRepo.GetActiveByUser(ctx, in.UserID)
	if err != nil {
		return models.Order{}, err
	}
	if cart.IsCheckedOut {
		return models.Order{}, models.ErrCartCheckedOut
	}
	if len(cart.Items) == 0 {
		return models.Order{}, models.ErrEmptyCart
	}

	now := s.clock.Now()
	order := models.Order{
		ID:                uuid.New(),
		UserID:            in.UserID,
		Status:            models.OrderStatusPending,
		ShippingAddressID: in.ShippingAddressID,
		BillingAddressID:  in.BillingAddressID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	for _, ci := range cart.Items {
		item, err := models.NewOrderItem(order.ID, ci.ProductID, ci.Quantity, ci.PriceSnapshot)
		if err != nil {
			return models.Order{}, err
		}
		order.Items = append(order.Items, item)
	}
	order.TotalPrice = models.OrderTotal(order.Items)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Order{}, fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for _, it := range order.Items {
		if err := s.stockRepo.DecrementStock(ctx, tx, it.ProductID, it.Quantity); err != nil {
			return models.Order{}, err
		}
	}
	if err := s.orderRepo.Create(ctx, tx, order); err != nil {
		return models.Order{}, err
	}
	if err := s.cartRepo.MarkCheckedOut(ctx, tx, cart.ID, now); err != nil {
		return models.Order{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Order{}, fmt.Errorf("tx commit: %w", err)
	}
	committed = true

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (models.Order, error) {
	if _, err := models.ParseOrderStatus(string(status)); err != nil {
		return models.Order{}, err
	}
	if err := s.orderRepo.UpdateStatus(ctx, id, status, s.clock.Now()); err != nil {
		return models.Order{}, err
	}
	return s.orderRepo.GetByID(ctx, id)
}
