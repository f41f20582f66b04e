package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vendora/commerce-backend/internal/clock"
	"github.com/vendora/commerce-backend/internal/models"
)

// TokenConfig carries the signing secret and token lifetime explicitly;
// there is no package-level state.
type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
}

// Tokens issues and verifies HS256 bearer tokens carrying a subject claim.
// A token cannot be revoked before its natural expiry.
type Tokens struct {
	cfg   TokenConfig
	clock clock.Clock
}

func NewTokens(cfg TokenConfig, clk clock.Clock) *Tokens {
	return &Tokens{cfg: cfg, clock: clk}
}

// Issue signs a compact token for the subject, valid for the configured TTL.
func (t *Tokens) Issue(subject string) (string, error) {
	now := t.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.cfg.TTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the subject. Every failure
// mode collapses to ErrUnauthorized; callers cannot distinguish a malformed
// token from an expired one.
func (t *Tokens) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.cfg.Secret, nil
	}, jwt.WithTimeFunc(t.clock.Now))
	if err != nil || !token.Valid {
		return "", models.ErrUnauthorized
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", models.ErrUnauthorized
	}
	return claims.Subject, nil
}
