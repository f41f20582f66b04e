package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendora/commerce-backend/internal/models"
	"github.com/vendora/commerce-backend/internal/service"
)

type CouponHandler struct {
	svc *service.CouponService
}

func NewCouponHandler(svc *service.CouponService) *CouponHandler {
	return &CouponHandler{svc: svc}
}

type createCouponRequest struct {
	Code            string           `json:"code"`
	Type            string           `json:"type"`
	DiscountPercent *decimal.Decimal `json:"discount_percent,omitempty"`
	DiscountFixed   *decimal.Decimal `json:"discount_fixed,omitempty"`
	MinOrderValue   decimal.Decimal  `json:"min_order_value"`
	ExpiresAt       time.Time        `json:"expires_at"`
	UsageLimit      *int             `json:"usage_limit,omitempty"`
	UserID          *uuid.UUID       `json:"user_id,omitempty"`
}

// Create handles POST /v1/coupons
func (h *CouponHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCouponRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	couponType, err := models.ParseCouponType(req.Type)
	if err != nil {
		badRequest(w, "invalid_type", err.Error())
		return
	}
	coupon, err := h.svc.CreateCoupon(r.Context(), models.CouponInput{
		Code:            req.Code,
		Type:            couponType,
		DiscountPercent: req.DiscountPercent,
		DiscountFixed:   req.DiscountFixed,
		MinOrderValue:   req.MinOrderValue,
		ExpiresAt:       req.ExpiresAt,
		UsageLimit:      req.UsageLimit,
		UserID:          req.UserID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, coupon)
}
