// Package validate holds the field-level validation rules shared by the
// transport layer and the model constructors. Each rule lives here exactly
// once; both boundaries call the same function.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Error reports a rejected field value. It is always a client input error,
// never a server fault.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func fail(field, reason string) error {
	return &Error{Field: field, Reason: reason}
}

const (
	MinNameLength = 2
	MaxNameLength = 50

	MinTitleLength = 2
	MaxTitleLength = 255

	MaxDescriptionLength = 255
	MaxCommentLength     = 1000
	MaxTrackingLength    = 50

	MinRating = 1.0
	MaxRating = 5.0

	MinPasswordLength = 8
	passwordSymbols   = `!@#$%^&*(),.?":{}|<>`
)

var (
	emailRe      = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
	postalCodeRe = regexp.MustCompile(`^\d{5}-?\d{3}$`)
	personNameRe = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿÇç ]+$`)
)

var maxDiscountPercent = decimal.NewFromInt(100)

// Email checks the local@domain.tld shape.
func Email(v string) (string, error) {
	v = strings.TrimSpace(v)
	if !emailRe.MatchString(v) {
		return "", fail("email", "invalid email address")
	}
	return v, nil
}

// PasswordStrength enforces the minimum password policy: at least 8
// characters with one lowercase, one uppercase, one digit and one symbol.
func PasswordStrength(v string) error {
	if len(v) < MinPasswordLength {
		return fail("password", "must be at least 8 characters")
	}
	var lower, upper, digit, symbol bool
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	if !lower || !upper || !digit || !symbol {
		return fail("password", "must include uppercase, lowercase, digit and special character")
	}
	return nil
}

// PostalCode normalizes to upper case and applies the canonical digit rule:
// 12345-678 or 12345678.
func PostalCode(v string) (string, error) {
	v = strings.ToUpper(strings.TrimSpace(v))
	if !postalCodeRe.MatchString(v) {
		return "", fail("postal_code", "expected format 12345-678 or 12345678")
	}
	return v, nil
}

// PersonName trims and accepts letters (including accented Latin) and spaces,
// 2 to 50 characters.
func PersonName(v string) (string, error) {
	v = strings.TrimSpace(v)
	if !personNameRe.MatchString(v) {
		return "", fail("full_name", "must contain only letters and spaces")
	}
	if n := len([]rune(v)); n < MinNameLength || n > MaxNameLength {
		return "", fail("full_name", "must be between 2 and 50 characters")
	}
	return v, nil
}

// Title validates entity names (categories, products): trimmed, 2 to 255
// characters.
func Title(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if n := len([]rune(v)); n < MinTitleLength || n > MaxTitleLength {
		return "", fail(field, "must be between 2 and 255 characters")
	}
	return v, nil
}

// Description validates optional descriptive text: at most 255 characters,
// and at least 2 when present.
func Description(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	if n := len([]rune(v)); n < 2 || n > MaxDescriptionLength {
		return "", fail(field, "must be between 2 and 255 characters")
	}
	return v, nil
}

// NonEmpty rejects values that are empty after trimming.
func NonEmpty(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fail(field, "is required and cannot be empty")
	}
	return v, nil
}

// Price must be strictly positive.
func Price(v decimal.Decimal) error {
	if v.Sign() <= 0 {
		return fail("price", "must be positive")
	}
	return nil
}

// Stock must be non-negative.
func Stock(v int) error {
	if v < 0 {
		return fail("stock", "must be non-negative")
	}
	return nil
}

// Rating must fall within [1.0, 5.0], bounds inclusive.
func Rating(v float64) error {
	if v < MinRating || v > MaxRating {
		return fail("rating", "must be between 1.0 and 5.0")
	}
	return nil
}

// Comment caps review comments at 1000 characters.
func Comment(v string) error {
	if len([]rune(v)) > MaxCommentLength {
		return fail("comment", "must be at most 1000 characters")
	}
	return nil
}

// Quantity must be a positive integer.
func Quantity(v int) error {
	if v <= 0 {
		return fail("quantity", "must be greater than zero")
	}
	return nil
}

// PriceSnapshot is captured at order time and must be non-negative.
func PriceSnapshot(v decimal.Decimal) error {
	if v.Sign() < 0 {
		return fail("price_snapshot", "must be non-negative")
	}
	return nil
}

// PaymentAmount must be strictly positive.
func PaymentAmount(v decimal.Decimal) error {
	if v.Sign() <= 0 {
		return fail("amount", "must be positive")
	}
	return nil
}

// CurrencyCode requires exactly three characters, normalized to lower case.
func CurrencyCode(v string) (string, error) {
	v = strings.TrimSpace(v)
	if len(v) != 3 {
		return "", fail("currency", "must be a 3-letter code")
	}
	return strings.ToLower(v), nil
}

// TrackingNumber must be non-empty after trimming and at most 50 characters.
func TrackingNumber(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fail("tracking_number", "is required")
	}
	if len([]rune(v)) > MaxTrackingLength {
		return "", fail("tracking_number", "must be at most 50 characters")
	}
	return v, nil
}

// DiscountPercent must be in (0, 100].
func DiscountPercent(v decimal.Decimal) error {
	if v.Sign() <= 0 || v.GreaterThan(maxDiscountPercent) {
		return fail("discount_percent", "must be between 0 and 100")
	}
	return nil
}

// DiscountFixed must be non-negative.
func DiscountFixed(v decimal.Decimal) error {
	if v.Sign() < 0 {
		return fail("discount_fixed", "must be non-negative")
	}
	return nil
}

// MinOrderValue must be non-negative.
func MinOrderValue(v decimal.Decimal) error {
	if v.Sign() < 0 {
		return fail("min_order_value", "must be non-negative")
	}
	return nil
}

// UsageCounter validates coupon usage_limit and used_count values.
func UsageCounter(field string, v int) error {
	if v < 0 {
		return fail(field, "must be non-negative")
	}
	return nil
}
