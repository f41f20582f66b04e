package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendora/commerce-backend/internal/clock"
	"github.com/vendora/commerce-backend/internal/models"
)

var testInstant = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testTokens(ttl time.Duration) *Tokens {
	cfg := TokenConfig{Secret: []byte("test-secret"), TTL: ttl}
	return NewTokens(cfg, clock.NewFixed(testInstant))
}

func TestIssueAndVerify(t *testing.T) {
	tokens := testTokens(30 * time.Minute)

	signed, err := tokens.Issue("user-123")
	require.NoError(t, err)

	subject, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-123", subject)
}

func TestVerifyExpired(t *testing.T) {
	tokens := testTokens(-10 * time.Second)

	signed, err := tokens.Issue("user-123")
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestVerifyTampered(t *testing.T) {
	tokens := testTokens(30 * time.Minute)

	signed, err := tokens.Issue("user-123")
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	_, err = tokens.Verify(tampered)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestVerifyWrongSecret(t *testing.T) {
	issued, err := testTokens(30 * time.Minute).Issue("user-123")
	require.NoError(t, err)

	other := NewTokens(TokenConfig{Secret: []byte("other-secret"), TTL: time.Minute}, clock.NewFixed(testInstant))
	_, err = other.Verify(issued)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestVerifyGarbage(t *testing.T) {
	tokens := testTokens(30 * time.Minute)
	_, err := tokens.Verify("not.a.token")
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}
