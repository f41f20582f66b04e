package validate

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	got, err := Email("  alice@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got)

	for _, bad := range []string{"", "alice", "alice@example", "@example.com", "a@b@c.com"} {
		_, err := Email(bad)
		assert.Error(t, err, "email %q", bad)
	}
}

func TestPasswordStrength(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"Str0ng!pass", true},
		{"Aa1!aaaa", true},
		{"Aa1!aaa", false},   // too short
		{"aa1!aaaa", false},  // no uppercase
		{"AA1!AAAA", false},  // no lowercase
		{"Aaa!aaaa", false},  // no digit
		{"Aa1aaaaa", false},  // no symbol
		{"Aa1-aaaa", false},  // dash is not in the accepted symbol set
	}
	for _, tc := range cases {
		err := PasswordStrength(tc.password)
		if tc.ok {
			assert.NoError(t, err, "password %q", tc.password)
		} else {
			assert.Error(t, err, "password %q", tc.password)
		}
	}
}

func TestPostalCode(t *testing.T) {
	got, err := PostalCode("12345-678")
	require.NoError(t, err)
	assert.Equal(t, "12345-678", got)

	got, err = PostalCode(" 12345678 ")
	require.NoError(t, err)
	assert.Equal(t, "12345678", got)

	for _, bad := range []string{"", "1234-567", "12345-67", "12345-6789", "abcde-fgh"} {
		_, err := PostalCode(bad)
		assert.Error(t, err, "postal code %q", bad)
	}
}

func TestPersonName(t *testing.T) {
	got, err := PersonName("  João da Silva ")
	require.NoError(t, err)
	assert.Equal(t, "João da Silva", got)

	_, err = PersonName("A")
	assert.Error(t, err)
	_, err = PersonName(strings.Repeat("a", 51))
	assert.Error(t, err)
	_, err = PersonName("R2D2")
	assert.Error(t, err)
}

func TestTitleAndDescription(t *testing.T) {
	got, err := Title("name", " Widgets ")
	require.NoError(t, err)
	assert.Equal(t, "Widgets", got)

	_, err = Title("name", "x")
	assert.Error(t, err)
	_, err = Title("name", strings.Repeat("x", 256))
	assert.Error(t, err)

	got, err = Description("description", "")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = Description("description", "x")
	assert.Error(t, err)
	_, err = Description("description", strings.Repeat("x", 256))
	assert.Error(t, err)
}

func TestPriceAndStock(t *testing.T) {
	assert.NoError(t, Price(decimal.NewFromFloat(0.01)))
	assert.Error(t, Price(decimal.Zero))
	assert.Error(t, Price(decimal.NewFromInt(-1)))

	assert.NoError(t, Stock(0))
	assert.NoError(t, Stock(10))
	assert.Error(t, Stock(-1))
}

func TestRating(t *testing.T) {
	assert.NoError(t, Rating(1.0))
	assert.NoError(t, Rating(5.0))
	assert.NoError(t, Rating(3.5))
	assert.Error(t, Rating(0.999))
	assert.Error(t, Rating(5.001))
}

func TestComment(t *testing.T) {
	assert.NoError(t, Comment(""))
	assert.NoError(t, Comment(strings.Repeat("x", 1000)))
	assert.Error(t, Comment(strings.Repeat("x", 1001)))
}

func TestQuantityAndSnapshot(t *testing.T) {
	assert.NoError(t, Quantity(1))
	assert.Error(t, Quantity(0))
	assert.Error(t, Quantity(-3))

	assert.NoError(t, PriceSnapshot(decimal.Zero))
	assert.Error(t, PriceSnapshot(decimal.NewFromInt(-1)))
}

func TestCurrencyCode(t *testing.T) {
	got, err := CurrencyCode(" BRL ")
	require.NoError(t, err)
	assert.Equal(t, "brl", got)

	for _, bad := range []string{"", "us", "usdd"} {
		_, err := CurrencyCode(bad)
		assert.Error(t, err, "currency %q", bad)
	}
}

func TestTrackingNumber(t *testing.T) {
	got, err := TrackingNumber(" TRACK-1 ")
	require.NoError(t, err)
	assert.Equal(t, "TRACK-1", got)

	_, err = TrackingNumber("   ")
	assert.Error(t, err)
	_, err = TrackingNumber(strings.Repeat("x", 51))
	assert.Error(t, err)
}

func TestDiscountBounds(t *testing.T) {
	assert.NoError(t, DiscountPercent(decimal.NewFromInt(100)))
	assert.NoError(t, DiscountPercent(decimal.NewFromFloat(0.5)))
	assert.Error(t, DiscountPercent(decimal.Zero))
	assert.Error(t, DiscountPercent(decimal.NewFromFloat(100.01)))

	assert.NoError(t, DiscountFixed(decimal.Zero))
	assert.Error(t, DiscountFixed(decimal.NewFromInt(-1)))

	assert.NoError(t, MinOrderValue(decimal.Zero))
	assert.Error(t, MinOrderValue(decimal.NewFromInt(-1)))
}

func TestErrorMessage(t *testing.T) {
	err := PasswordStrength("short")
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)
	assert.Contains(t, verr.Error(), "password:")
}
