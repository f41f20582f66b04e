package models

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")

	ErrCartExists     = errors.New("active cart already exists")
	ErrCartCheckedOut = errors.New("cart already checked out")
	ErrEmptyCart      = errors.New("cart has no items")

	ErrInsufficientStock = errors.New("insufficient stock")
	ErrAmountMismatch    = errors.New("payment amount does not match order total")

	ErrCouponExpired   = errors.New("coupon expired")
	ErrCouponExhausted = errors.New("coupon usage limit reached")
	ErrMinOrderNotMet  = errors.New("order total below coupon minimum")
)
