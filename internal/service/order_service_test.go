package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendora/commerce-backend/internal/clock"
	"github.com/vendora/commerce-backend/internal/models"
)

type fakeOrderRepo struct {
	mu      sync.Mutex
	created []models.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, tx *sql.Tx, o models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, o)
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.created {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, models.ErrNotFound
}

func (f *fakeOrderRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Order
	for _, o := range f.created {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.created {
		if f.created[i].ID == id {
			f.created[i].Status = status
			f.created[i].UpdatedAt = now
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakeOrderRepo) UpdateTotal(ctx context.Context, tx *sql.Tx, id uuid.UUID, total decimal.Decimal, now time.Time) error {
	return nil
}

func (f *fakeOrderRepo) LinkCoupon(ctx context.Context, tx *sql.Tx, orderID, couponID uuid.UUID) error {
	return nil
}

type fakeCheckoutCartRepo struct {
	cart       models.Cart
	checkedOut bool
}

func (f *fakeCheckoutCartRepo) GetActiveByUser(ctx context.Context, userID uuid.UUID) (models.Cart, error) {
	if f.cart.UserID != userID {
		return models.Cart{}, models.ErrNotFound
	}
	return f.cart, nil
}

func (f *fakeCheckoutCartRepo) MarkCheckedOut(ctx context.Context, tx *sql.Tx, cartID uuid.UUID, now time.Time) error {
	if f.checkedOut {
		return models.ErrCartCheckedOut
	}
	f.checkedOut = true
	return nil
}

type fakeStockRepo struct {
	stock map[uuid.UUID]int
}

func (f *fakeStockRepo) DecrementStock(ctx context.Context, tx *sql.Tx, id uuid.UUID, quantity int) error {
	if f.stock[id] < quantity {
		return models.ErrInsufficientStock
	}
	f.stock[id] -= quantity
	return nil
}

func checkoutFixture(t *testing.T) (*fakeCheckoutCartRepo, *fakeStockRepo, uuid.UUID, uuid.UUID) {
	t.Helper()
	userID := uuid.New()
	productID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cart := models.NewCart(userID, now)
	item, err := models.NewCartItem(cart.ID, productID, 2, decimal.RequireFromString("19.99"), now)
	require.NoError(t, err)
	cart.Items = []models.CartItem{item}

	return &fakeCheckoutCartRepo{cart: cart}, &fakeStockRepo{stock: map[uuid.UUID]int{productID: 5}}, userID, productID
}

func TestCheckout(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	cartRepo, stockRepo, userID, productID := checkoutFixture(t)
	orderRepo := &fakeOrderRepo{}
	now := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
	svc := NewOrderService(conn, orderRepo, cartRepo, stockRepo, clock.NewFixed(now))

	shipping := uuid.New()
	order, err := svc.Checkout(context.Background(), CheckoutInput{
		UserID:            userID,
		ShippingAddressID: shipping,
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "39.98", order.TotalPrice.StringFixed(2))
	require.Len(t, order.Items, 1)
	assert.Equal(t, productID, order.Items[0].ProductID)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 3, stockRepo.stock[productID])
	assert.True(t, cartRepo.checkedOut)
	require.Len(t, orderRepo.created, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckoutEmptyCart(t *testing.T) {
	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	cartRepo, stockRepo, userID, _ := checkoutFixture(t)
	cartRepo.cart.Items = nil

	now := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
	svc := NewOrderService(conn, &fakeOrderRepo{}, cartRepo, stockRepo, clock.NewFixed(now))

	_, err = svc.Checkout(context.Background(), CheckoutInput{UserID: userID, ShippingAddressID: uuid.New()})
	assert.ErrorIs(t, err, models.ErrEmptyCart)
	assert.False(t, cartRepo.checkedOut)
}

func TestCheckoutInsufficientStock(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	cartRepo, stockRepo, userID, productID := checkoutFixture(t)
	stockRepo.stock[productID] = 1

	now := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
	orderRepo := &fakeOrderRepo{}
	svc := NewOrderService(conn, orderRepo, cartRepo, stockRepo, clock.NewFixed(now))

	_, err = svc.Checkout(context.Background(), CheckoutInput{UserID: userID, ShippingAddressID: uuid.New()})
	assert.ErrorIs(t, err, models.ErrInsufficientStock)
	assert.Empty(t, orderRepo.created)
	assert.False(t, cartRepo.checkedOut)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckoutAlreadyCheckedOut(t *testing.T) {
	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	cartRepo, stockRepo, userID, _ := checkoutFixture(t)
	cartRepo.cart.IsCheckedOut = true

	now := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
	svc := NewOrderService(conn, &fakeOrderRepo{}, cartRepo, stockRepo, clock.NewFixed(now))

	_, err = svc.Checkout(context.Background(), CheckoutInput{UserID: userID, ShippingAddressID: uuid.New()})
	assert.ErrorIs(t, err, models.ErrCartCheckedOut)
}

func TestUpdateStatus(t *testing.T) {
	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	now := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
	orderRepo := &fakeOrderRepo{created: []models.Order{{
		ID:     uuid.New(),
		Status: models.OrderStatusPending,
	}}}
	svc := NewOrderService(conn, orderRepo, &fakeCheckoutCartRepo{}, &fakeStockRepo{}, clock.NewFixed(now))

	order, err := svc.UpdateStatus(context.Background(), orderRepo.created[0].ID, models.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, order.Status)

	_, err = svc.UpdateStatus(context.Background(), orderRepo.created[0].ID, "lost")
	assert.Error(t, err)
}
