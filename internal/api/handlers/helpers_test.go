package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendora/commerce-backend/internal/models"
	"github.com/vendora/commerce-backend/internal/validate"
)

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestWriteErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{&validate.Error{Field: "email", Reason: "invalid email address"}, http.StatusBadRequest, "invalid_field"},
		{models.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{models.ErrNotFound, http.StatusNotFound, "not_found"},
		{models.ErrCartExists, http.StatusConflict, "cart_exists"},
		{models.ErrCartCheckedOut, http.StatusConflict, "cart_checked_out"},
		{models.ErrEmptyCart, http.StatusBadRequest, "empty_cart"},
		{models.ErrInsufficientStock, http.StatusConflict, "insufficient_stock"},
		{models.ErrAmountMismatch, http.StatusBadRequest, "amount_mismatch"},
		{models.ErrCouponExpired, http.StatusBadRequest, "coupon_expired"},
		{models.ErrCouponExhausted, http.StatusConflict, "coupon_exhausted"},
		{models.ErrMinOrderNotMet, http.StatusBadRequest, "min_order_not_met"},
		{models.ErrConflict, http.StatusConflict, "conflict"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		writeError(rec, tc.err)
		assert.Equal(t, tc.status, rec.Code, "error %v", tc.err)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, tc.code, body.Code, "error %v", tc.err)
		assert.NotEmpty(t, body.Error)
	}
}

func TestWriteErrorWrappedSentinel(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, errors.Join(errors.New("redeem coupon"), models.ErrCouponExhausted))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "coupon_exhausted", decodeErrorBody(t, rec).Code)
}

func TestWriteErrorInternalHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, errors.New("pq: connection refused"))
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "internal error", body.Error)
	assert.NotContains(t, body.Error, "pq:")
}
