package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vendora/commerce-backend/internal/models"
)

type CartRepo struct {
	db *sql.DB
}

func NewCartRepo(db *sql.DB) *CartRepo {
	return &CartRepo{db: db}
}

const cartColumns = `id, user_id, is_active, is_checked_out, created_at, updated_at`
const cartItemColumns = `id, cart_id, product_id, quantity, price_snapshot, created_at, updated_at`

func (r *CartRepo) Create(ctx context.Context, c models.Cart) error {
	query := `INSERT INTO carts (` + cartColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query, c.ID, c.UserID, c.IsActive, c.IsCheckedOut, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrCartExists
		}
		return fmt.Errorf("create cart: %w", err)
	}
	return nil
}

func (r *CartRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Cart, error) {
	query := `SELECT ` + cartColumns + ` FROM carts WHERE id = $1`
	return r.getCart(ctx, r.db.QueryRowContext(ctx, query, id))
}

func (r *CartRepo) GetActiveByUser(ctx context.Context, userID uuid.UUID) (models.Cart, error) {
	query := `SELECT ` + cartColumns + ` FROM carts WHERE user_id = $1 AND is_active`
	return r.getCart(ctx, r.db.QueryRowContext(ctx, query, userID))
}

func (r *CartRepo) List(ctx context.Context) ([]models.Cart, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+cartColumns+` FROM carts ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list carts: %w", err)
	}
	defer rows.Close()

	var carts []models.Cart
	for rows.Next() {
		var c models.Cart
		if err := rows.Scan(&c.ID, &c.UserID, &c.IsActive, &c.IsCheckedOut, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cart: %w", err)
		}
		carts = append(carts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range carts {
		items, err := r.listItems(ctx, carts[i].ID)
		if err != nil {
			return nil, err
		}
		carts[i].Items = items
	}
	return carts, nil
}

func (r *CartRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrNotFound
	}
	return nil
}

// MarkCheckedOut closes the cart inside the checkout transaction.
func (r *CartRepo) MarkCheckedOut(ctx context.Context, tx *sql.Tx, cartID uuid.UUID, now time.Time) error {
	query := `
		UPDATE carts
		SET is_active = FALSE, is_checked_out = TRUE, updated_at = $2
		WHERE id = $1 AND NOT is_checked_out
	`
	res, err := tx.ExecContext(ctx, query, cartID, now)
	if err != nil {
		return fmt.Errorf("mark cart checked out: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrCartCheckedOut
	}
	return nil
}

func (r *CartRepo) InsertItem(ctx context.Context, it models.CartItem) error {
	query := `INSERT INTO cart_items (` + cartItemColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		it.ID, it.CartID, it.ProductID, it.Quantity, it.PriceSnapshot, it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrConflict
		}
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

func (r *CartRepo) GetItem(ctx context.Context, cartID, productID uuid.UUID) (models.CartItem, error) {
	query := `SELECT ` + cartItemColumns + ` FROM cart_items WHERE cart_id = $1 AND product_id = $2`

	var it models.CartItem
	err := r.db.QueryRowContext(ctx, query, cartID, productID).Scan(
		&it.ID, &it.CartID, &it.ProductID, &it.Quantity, &it.PriceSnapshot, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CartItem{}, models.ErrNotFound
		}
		return models.CartItem{}, fmt.Errorf("get cart item: %w", err)
	}
	return it, nil
}

// AddItemQuantity merges quantities when the product is already in the cart.
func (r *CartRepo) AddItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int, now time.Time) error {
	query := `
		UPDATE cart_items
		SET quantity = quantity + $2, updated_at = $3
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, itemID, quantity, now)
	if err != nil {
		return fmt.Errorf("add cart item quantity: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *CartRepo) getCart(ctx context.Context, row *sql.Row) (models.Cart, error) {
	var c models.Cart
	err := row.Scan(&c.ID, &c.UserID, &c.IsActive, &c.IsCheckedOut, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Cart{}, models.ErrNotFound
		}
		return models.Cart{}, fmt.Errorf("scan cart: %w", err)
	}
	items, err := r.listItems(ctx, c.ID)
	if err != nil {
		return models.Cart{}, err
	}
	c.Items = items
	return c, nil
}

func (r *CartRepo) listItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error) {
	query := `SELECT ` + cartItemColumns + ` FROM cart_items WHERE cart_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, cartID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var it models.CartItem
		if err := rows.Scan(&it.ID, &it.CartID, &it.ProductID, &it.Quantity, &it.PriceSnapshot, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
