package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validCoupon(t *testing.T, in CouponInput) Coupon {
	t.Helper()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if in.ExpiresAt.IsZero() {
		in.ExpiresAt = now.Add(24 * time.Hour)
	}
	c, err := NewCoupon(in, now)
	require.NoError(t, err)
	return c
}

func TestNewCouponRequiresTypeSpecificDiscount(t *testing.T) {
	expires := time.Now().Add(time.Hour)

	_, err := NewCoupon(CouponInput{Code: "SAVE", Type: CouponTypePercentage, ExpiresAt: expires}, time.Now())
	assert.Error(t, err)

	_, err = NewCoupon(CouponInput{Code: "SAVE", Type: CouponTypeFixedAmount, ExpiresAt: expires}, time.Now())
	assert.Error(t, err)

	_, err = NewCoupon(CouponInput{Code: "SAVE", Type: "buy_one_get_one", ExpiresAt: expires}, time.Now())
	assert.Error(t, err)

	_, err = NewCoupon(CouponInput{
		Code: "SAVE", Type: CouponTypePercentage,
		DiscountPercent: decPtr("101"), ExpiresAt: expires,
	}, time.Now())
	assert.Error(t, err)
}

func TestCouponApplyPercentage(t *testing.T) {
	c := validCoupon(t, CouponInput{
		Code: "HALF", Type: CouponTypePercentage, DiscountPercent: decPtr("50"),
	})
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	got, err := c.Apply(decimal.RequireFromString("100.00"), now)
	require.NoError(t, err)
	assert.Equal(t, "50.00", got.StringFixed(2))
}

func TestCouponApplyFixed(t *testing.T) {
	c := validCoupon(t, CouponInput{
		Code: "TWENTY", Type: CouponTypeFixedAmount, DiscountFixed: decPtr("20"),
	})
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	got, err := c.Apply(decimal.RequireFromString("100.00"), now)
	require.NoError(t, err)
	assert.Equal(t, "80.00", got.StringFixed(2))
}

func TestCouponApplyFloorsAtZero(t *testing.T) {
	c := validCoupon(t, CouponInput{
		Code: "BIG", Type: CouponTypeFixedAmount, DiscountFixed: decPtr("150"),
	})
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	got, err := c.Apply(decimal.RequireFromString("100.00"), now)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestCouponApplyExpired(t *testing.T) {
	c := validCoupon(t, CouponInput{
		Code: "OLD", Type: CouponTypePercentage, DiscountPercent: decPtr("10"),
	})
	after := c.ExpiresAt.Add(time.Second)

	_, err := c.Apply(decimal.NewFromInt(100), after)
	assert.ErrorIs(t, err, ErrCouponExpired)

	// expiry boundary itself is already expired
	_, err = c.Apply(decimal.NewFromInt(100), c.ExpiresAt)
	assert.ErrorIs(t, err, ErrCouponExpired)
}

func TestCouponApplyMinOrder(t *testing.T) {
	c := validCoupon(t, CouponInput{
		Code: "MIN", Type: CouponTypePercentage, DiscountPercent: decPtr("10"),
		MinOrderValue: decimal.NewFromInt(50),
	})
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	_, err := c.Apply(decimal.RequireFromString("49.99"), now)
	assert.ErrorIs(t, err, ErrMinOrderNotMet)

	got, err := c.Apply(decimal.RequireFromString("50.00"), now)
	require.NoError(t, err)
	assert.Equal(t, "45.00", got.StringFixed(2))
}

func TestCouponApplyExhausted(t *testing.T) {
	limit := 1
	c := validCoupon(t, CouponInput{
		Code: "ONCE", Type: CouponTypePercentage, DiscountPercent: decPtr("10"),
		UsageLimit: &limit,
	})
	c.UsedCount = 1
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	_, err := c.Apply(decimal.NewFromInt(100), now)
	assert.ErrorIs(t, err, ErrCouponExhausted)
}
