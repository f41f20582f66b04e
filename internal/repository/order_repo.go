package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendora/commerce-backend/internal/models"
)

type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

const orderColumns = `id, user_id, status, total_price, shipping_address_id, billing_address_id, created_at, updated_at`
const orderItemColumns = `id, order_id, product_id, quantity, price_snapshot`

// Create inserts the order and its line items inside the checkout
// transaction.
func (r *OrderRepo) Create(ctx context.Context, tx *sql.Tx, o models.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := tx.ExecContext(ctx, query,
		o.ID, o.UserID, o.Status, o.TotalPrice, o.ShippingAddressID, o.BillingAddressID, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	itemQuery := `INSERT INTO order_items (` + orderItemColumns + `) VALUES ($1, $2, $3, $4, $5)`
	for _, it := range o.Items {
		if _, err := tx.ExecContext(ctx, itemQuery, it.ID, it.OrderID, it.ProductID, it.Quantity, it.PriceSnapshot); err != nil {
			return fmt.Errorf("create order item: %w", err)
		}
	}
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	var o models.Order
	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&o.ID, &o.UserID, &status, &o.TotalPrice, &o.ShippingAddressID, &o.BillingAddressID, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, models.ErrNotFound
		}
		return models.Order{}, fmt.Errorf("get order: %w", err)
	}
	o.Status = models.OrderStatus(status)

	items, err := r.listItems(ctx, o.ID)
	if err != nil {
		return models.Order{}, err
	}
	o.Items = items
	return o, nil
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		var status string
		if err := rows.Scan(&o.ID, &o.UserID, &status, &o.TotalPrice, &o.ShippingAddressID, &o.BillingAddressID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Status = models.OrderStatus(status)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range orders {
		items, err := r.listItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus, now time.Time) error {
	query := `UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, status, now)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrNotFound
	}
	return nil
}

// UpdateTotal rewrites the stored total inside the coupon transaction.
func (r *OrderRepo) UpdateTotal(ctx context.Context, tx *sql.Tx, id uuid.UUID, total decimal.Decimal, now time.Time) error {
	query := `UPDATE orders SET total_price = $2, updated_at = $3 WHERE id = $1`

	res, err := tx.ExecContext(ctx, query, id, total, now)
	if err != nil {
		return fmt.Errorf("update order total: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrNotFound
	}
	return nil
}

// LinkCoupon records the coupon applied to an order. The primary key makes a
// second application of the same coupon to the same order a conflict.
func (r *OrderRepo) LinkCoupon(ctx context.Context, tx *sql.Tx, orderID, couponID uuid.UUID) error {
	query := `INSERT INTO order_coupons (order_id, coupon_id) VALUES ($1, $2)`

	_, err := tx.ExecContext(ctx, query, orderID, couponID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrConflict
		}
		return fmt.Errorf("link coupon: %w", err)
	}
	return nil
}

func (r *OrderRepo) listItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	query := `SELECT ` + orderItemColumns + ` FROM order_items WHERE order_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.PriceSnapshot); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
