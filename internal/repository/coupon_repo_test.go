package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendora/commerce-backend/internal/models"
)

func TestCouponRedeemConsumesOneUse(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	couponID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE coupons").
		WithArgs(couponID, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := conn.Begin()
	require.NoError(t, err)

	repo := NewCouponRepo(conn)
	require.NoError(t, repo.Redeem(context.Background(), tx, couponID, now))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCouponRedeemExhausted(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	couponID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE coupons").
		WithArgs(couponID, now).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	tx, err := conn.Begin()
	require.NoError(t, err)

	repo := NewCouponRepo(conn)
	err = repo.Redeem(context.Background(), tx, couponID, now)
	assert.ErrorIs(t, err, models.ErrCouponExhausted)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCouponCreateDuplicateCode(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectExec("INSERT INTO coupons").
		WillReturnError(&pq.Error{Code: "23505"})

	pct := decimal.NewFromInt(10)
	coupon, err := models.NewCoupon(models.CouponInput{
		Code: "SAVE10", Type: models.CouponTypePercentage,
		DiscountPercent: &pct,
		ExpiresAt:       time.Now().Add(time.Hour),
	}, time.Now())
	require.NoError(t, err)

	repo := NewCouponRepo(conn)
	err = repo.Create(context.Background(), coupon)
	assert.ErrorIs(t, err, models.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCouponGetByCode(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	id := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "code", "coupon_type", "discount_percent", "discount_fixed",
		"min_order_value", "expires_at", "usage_limit", "used_count", "user_id",
		"created_at", "updated_at",
	}).AddRow(id, "SAVE10", "percentage", "10", nil, decimal.Zero, now.Add(time.Hour), 5, 2, nil, now, now)

	mock.ExpectQuery("SELECT (.+) FROM coupons WHERE code").
		WithArgs("SAVE10").
		WillReturnRows(rows)

	repo := NewCouponRepo(conn)
	coupon, err := repo.GetByCode(context.Background(), conn, "SAVE10")
	require.NoError(t, err)
	assert.Equal(t, id, coupon.ID)
	assert.Equal(t, models.CouponTypePercentage, coupon.Type)
	require.NotNil(t, coupon.DiscountPercent)
	assert.Equal(t, "10", coupon.DiscountPercent.String())
	require.NotNil(t, coupon.UsageLimit)
	assert.Equal(t, 5, *coupon.UsageLimit)
	assert.Equal(t, 2, coupon.UsedCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCouponGetByCodeNotFound(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectQuery("SELECT (.+) FROM coupons WHERE code").
		WithArgs("NOPE").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewCouponRepo(conn)
	_, err = repo.GetByCode(context.Background(), conn, "NOPE")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
