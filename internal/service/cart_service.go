package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vendora/commerce-backend/internal/clock"
	"github.com/vendora/commerce-backend/internal/models"
	"github.com/vendora/commerce-backend/internal/validate"
)

type CartRepo interface {
	Create(ctx context.Context, c models.Cart) error
	GetByID(ctx context.Context, id uuid.UUID) (models.Cart, error)
	GetActiveByUser(ctx context.Context, userID uuid.UUID) (models.Cart, error)
	List(ctx context.Context) ([]models.Cart, error)
	Delete(ctx context.Context, id uuid.UUID) error
	InsertItem(ctx context.Context, it models.CartItem) error
	GetItem(ctx context.Context, cartID, productID uuid.UUID) (models.CartItem, error)
	AddItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int, now time.Time) error
}

type CartService struct {
	cartRepo    CartRepo
	productRepo ProductRepo
	clock       clock.Clock
}

func NewCartService(cartRepo CartRepo, productRepo ProductRepo, clk clock.Clock) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo, clock: clk}
}

// CreateCart opens a cart for the user. The partial unique index on active
// carts turns a second open cart into ErrCartExists.
func (s *CartService) CreateCart(ctx context.Context, userID uuid.UUID) (models.Cart, error) {
	cart := models.NewCart(userID, s.clock.Now())
	if err := s.cartRepo.Create(ctx, cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func (s *CartService) GetCart(ctx context.Context, id uuid.UUID) (models.Cart, error) {
	return s.cartRepo.GetByID(ctx, id)
}

func (s *CartService) GetActiveCart(ctx context.Context, userID uuid.UUID) (models.Cart, error) {
	return s.cartRepo.GetActiveByUser(ctx, userID)
}

func (s *CartService) ListCarts(ctx context.Context) ([]models.Cart, error) {
	return s.cartRepo.List(ctx)
}

func (s *CartService) DeleteCart(ctx context.Context, id uuid.UUID) error {
	return s.cartRepo.Delete(ctx, id)
}

// AddItem puts a product into the user's active cart, snapshotting the
// current price. Adding a product already in the cart merges quantities and
// keeps the original snapshot.
func (s *CartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (models.Cart, error) {
	if err := validate.Quantity(quantity); err != nil {
		return models.Cart{}, err
	}

	cart, err := s.cartRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return models.Cart{}, err
	}
	if cart.IsCheckedOut {
		return models.Cart{}, models.ErrCartCheckedOut
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return models.Cart{}, err
	}

	now := s.clock.Now()
	existing, err := s.cartRepo.GetItem(ctx, cart.ID, productID)
	switch {
	case err == nil:
		if err := s.cartRepo.AddItemQuantity(ctx, existing.ID, quantity, now); err != nil {
			return models.Cart{}, err
		}
	case errors.Is(err, models.ErrNotFound):
		item, err := models.NewCartItem(cart.ID, productID, quantity, product.Price, now)
		if err != nil {
			return models.Cart{}, err
		}
		if err := s.cartRepo.InsertItem(ctx, item); err != nil {
			return models.Cart{}, err
		}
	default:
		return models.Cart{}, err
	}

	return s.cartRepo.GetByID(ctx, cart.ID)
}
