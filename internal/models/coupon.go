package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendora/commerce-backend/internal/validate"
)

type CouponType string

const (
	CouponTypePercentage  CouponType = "percentage"
	CouponTypeFixedAmount CouponType = "fixed_amount"
)

func ParseCouponType(s string) (CouponType, error) {
	switch CouponType(s) {
	case CouponTypePercentage, CouponTypeFixedAmount:
		return CouponType(s), nil
	}
	return "", fmt.Errorf("invalid coupon type: %q", s)
}

type Coupon struct {
	ID              uuid.UUID        `json:"id"`
	Code            string           `json:"code"`
	Type            CouponType       `json:"type"`
	DiscountPercent *decimal.Decimal `json:"discount_percent,omitempty"`
	DiscountFixed   *decimal.Decimal `json:"discount_fixed,omitempty"`
	MinOrderValue   decimal.Decimal  `json:"min_order_value"`
	ExpiresAt       time.Time        `json:"expires_at"`
	UsageLimit      *int             `json:"usage_limit,omitempty"`
	UsedCount       int              `json:"used_count"`
	UserID          *uuid.UUID       `json:"user_id,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type CouponInput struct {
	Code            string
	Type            CouponType
	DiscountPercent *decimal.Decimal
	DiscountFixed   *decimal.Decimal
	MinOrderValue   decimal.Decimal
	ExpiresAt       time.Time
	UsageLimit      *int
	UserID          *uuid.UUID
}

func NewCoupon(in CouponInput, now time.Time) (Coupon, error) {
	code, err := validate.NonEmpty("code", in.Code)
	if err != nil {
		return Coupon{}, err
	}
	if _, err := ParseCouponType(string(in.Type)); err != nil {
		return Coupon{}, err
	}
	switch in.Type {
	case CouponTypePercentage:
		if in.DiscountPercent == nil {
			return Coupon{}, &validate.Error{Field: "discount_percent", Reason: "required for percentage coupons"}
		}
		if err := validate.DiscountPercent(*in.DiscountPercent); err != nil {
			return Coupon{}, err
		}
	case CouponTypeFixedAmount:
		if in.DiscountFixed == nil {
			return Coupon{}, &validate.Error{Field: "discount_fixed", Reason: "required for fixed amount coupons"}
		}
		if err := validate.DiscountFixed(*in.DiscountFixed); err != nil {
			return Coupon{}, err
		}
	}
	if err := validate.MinOrderValue(in.MinOrderValue); err != nil {
		return Coupon{}, err
	}
	if in.UsageLimit != nil {
		if err := validate.UsageCounter("usage_limit", *in.UsageLimit); err != nil {
			return Coupon{}, err
		}
	}
	return Coupon{
		ID:              uuid.New(),
		Code:            code,
		Type:            in.Type,
		DiscountPercent: in.DiscountPercent,
		DiscountFixed:   in.DiscountFixed,
		MinOrderValue:   in.MinOrderValue.Round(2),
		ExpiresAt:       in.ExpiresAt,
		UsageLimit:      in.UsageLimit,
		UserID:          in.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

var hundred = decimal.NewFromInt(100)

// Apply computes the discounted total. It does not consume a redemption;
// the usage counter is incremented by the storage layer in the same
// conditional update that enforces the limit.
func (c Coupon) Apply(orderTotal decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if !now.Before(c.ExpiresAt) {
		return decimal.Zero, ErrCouponExpired
	}
	if orderTotal.LessThan(c.MinOrderValue) {
		return decimal.Zero, ErrMinOrderNotMet
	}
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return decimal.Zero, ErrCouponExhausted
	}

	var discounted decimal.Decimal
	switch c.Type {
	case CouponTypePercentage:
		factor := hundred.Sub(*c.DiscountPercent).Div(hundred)
		discounted = orderTotal.Mul(factor)
	case CouponTypeFixedAmount:
		discounted = orderTotal.Sub(*c.DiscountFixed)
	default:
		return decimal.Zero, fmt.Errorf("invalid coupon type: %q", c.Type)
	}
	if discounted.Sign() < 0 {
		discounted = decimal.Zero
	}
	return discounted.Round(2), nil
}
