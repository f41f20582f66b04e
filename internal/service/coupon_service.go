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
	"github.com/vendora/commerce-backend/pkg/db"
)

// Repos required by the coupon service; interfaces allow mocking in tests.
type CouponRepo interface {
	Create(ctx context.Context, c models.Coupon) error
	GetByCode(ctx context.Context, q Querier, code string) (models.Coupon, error)
	Redeem(ctx context.Context, tx *sql.Tx, couponID uuid.UUID, now time.Time) error
}

type CouponOrderRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (models.Order, error)
	UpdateTotal(ctx context.Context, tx *sql.Tx, id uuid.UUID, total decimal.Decimal, now time.Time) error
	LinkCoupon(ctx context.Context, tx *sql.Tx, orderID, couponID uuid.UUID) error
}

// Querier aliases the storage querier so services can hand repos either the
// pool or an open transaction.
type Querier = db.Querier

type CouponService struct {
	db         *sql.DB
	couponRepo CouponRepo
	orderRepo  CouponOrderRepo
	clock      clock.Clock
}

func NewCouponService(db *sql.DB, cRepo CouponRepo, oRepo CouponOrderRepo, clk clock.Clock) *CouponService {
	return &CouponService{
		db:         db,
		couponRepo: cRepo,
		orderRepo:  oRepo,
		clock:      clk,
	}
}

func (s *CouponService) CreateCoupon(ctx context.Context, in models.CouponInput) (models.Coupon, error) {
	coupon, err := models.NewCoupon(in, s.clock.Now())
	if err != nil {
		return models.Coupon{}, err
	}
	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		return models.Coupon{}, err
	}
	return coupon, nil
}

// ApplyToOrder redeems a coupon against an order and returns the discounted
// order. The discount computation, the redemption and the total rewrite all
// commit together; the usage limit is enforced by the conditional update in
// Redeem, so concurrent redemptions of a nearly-exhausted coupon serialize
// at the database.
func (s *CouponService) ApplyToOrder(ctx context.Context, orderID uuid.UUID, code string) (models.Order, error) {
	now := s.clock.Now()

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}

	coupon, err := s.couponRepo.GetByCode(ctx, s.db, code)
	if err != nil {
		return models.Order{}, err
	}

	discounted, err := coupon.Apply(order.TotalPrice, now)
	if err != nil {
		return models.Order{}, err
	}

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

	if err := s.couponRepo.Redeem(ctx, tx, coupon.ID, now); err != nil {
		return models.Order{}, err
	}
	if err := s.orderRepo.LinkCoupon(ctx, tx, order.ID, coupon.ID); err != nil {
		return models.Order{}, err
	}
	if err := s.orderRepo.UpdateTotal(ctx, tx, order.ID, discounted, now); err != nil {
		return models.Order{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Order{}, fmt.Errorf("tx commit: %w", err)
	}
	committed = true

	order.TotalPrice = discounted
	order.UpdatedAt = now
	return order, nil
}
