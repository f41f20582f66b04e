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
	"github.com/vendora/commerce-backend/pkg/db"
)

type CouponRepo struct {
	db *sql.DB
}

func NewCouponRepo(db *sql.DB) *CouponRepo {
	return &CouponRepo{db: db}
}

const couponColumns = `id, code, coupon_type, discount_percent, discount_fixed, min_order_value, expires_at, usage_limit, used_count, user_id, created_at, updated_at`

func (r *CouponRepo) Create(ctx context.Context, c models.Coupon) error {
	query := `
		INSERT INTO coupons (` + couponColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Code, c.Type, decimalPtr(c.DiscountPercent), decimalPtr(c.DiscountFixed),
		c.MinOrderValue, c.ExpiresAt, intPtr(c.UsageLimit), c.UsedCount, uuidPtr(c.UserID),
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrConflict
		}
		return fmt.Errorf("create coupon: %w", err)
	}
	return nil
}

func (r *CouponRepo) GetByCode(ctx context.Context, q db.Querier, code string) (models.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE code = $1`

	var c models.Coupon
	var couponType string
	var percent, fixed sql.NullString
	var limit sql.NullInt64
	var userID *uuid.UUID
	err := q.QueryRowContext(ctx, query, code).Scan(
		&c.ID, &c.Code, &couponType, &percent, &fixed,
		&c.MinOrderValue, &c.ExpiresAt, &limit, &c.UsedCount, &userID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Coupon{}, models.ErrNotFound
		}
		return models.Coupon{}, fmt.Errorf("get coupon: %w", err)
	}

	c.Type = models.CouponType(couponType)
	c.UserID = userID
	if percent.Valid {
		d, err := decimal.NewFromString(percent.String)
		if err != nil {
			return models.Coupon{}, fmt.Errorf("parse discount_percent: %w", err)
		}
		c.DiscountPercent = &d
	}
	if fixed.Valid {
		d, err := decimal.NewFromString(fixed.String)
		if err != nil {
			return models.Coupon{}, fmt.Errorf("parse discount_fixed: %w", err)
		}
		c.DiscountFixed = &d
	}
	if limit.Valid {
		n := int(limit.Int64)
		c.UsageLimit = &n
	}
	return c, nil
}

// Redeem consumes one use of the coupon. The limit check and the increment
// happen in a single conditional update, so two concurrent redemptions of a
// coupon with one remaining use cannot both succeed.
func (r *CouponRepo) Redeem(ctx context.Context, tx *sql.Tx, couponID uuid.UUID, now time.Time) error {
	query := `
		UPDATE coupons
		SET used_count = used_count + 1, updated_at = $2
		WHERE id = $1
		  AND expires_at > $2
		  AND (usage_limit IS NULL OR used_count < usage_limit)
	`
	res, err := tx.ExecContext(ctx, query, couponID, now)
	if err != nil {
		return fmt.Errorf("redeem coupon: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrCouponExhausted
	}
	return nil
}

func decimalPtr(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return *d
}

func intPtr(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}

func uuidPtr(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return *id
}
