package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendora/commerce-backend/internal/auth"
	"github.com/vendora/commerce-backend/internal/clock"
	"github.com/vendora/commerce-backend/internal/models"
	"github.com/vendora/commerce-backend/internal/service"
)

type fakeUserRepo struct {
	user models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, tx *sql.Tx, u models.User) error { return nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	if f.user.ID != id {
		return models.User{}, models.ErrNotFound
	}
	return f.user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	if f.user.Email != email {
		return models.User{}, models.ErrNotFound
	}
	return f.user, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u models.User) error { return nil }

func loginFixture(t *testing.T) (*AuthHandler, *auth.Tokens, models.User) {
	t.Helper()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	digest, err := auth.HashPassword("Str0ng!pass")
	require.NoError(t, err)
	user, err := models.NewUser("alice@example.com", "Alice Doe", digest, now)
	require.NoError(t, err)

	tokens := auth.NewTokens(auth.TokenConfig{Secret: []byte("secret"), TTL: time.Hour}, clock.NewFixed(now))
	svc := service.NewAuthService(&fakeUserRepo{user: user}, tokens)
	return NewAuthHandler(svc), tokens, user
}

func postLogin(t *testing.T, h *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	h, tokens, user := loginFixture(t)

	rec := postLogin(t, h, `{"email":"alice@example.com","password":"Str0ng!pass"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "bearer", body.TokenType)

	subject, err := tokens.Verify(body.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), subject)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	h, _, _ := loginFixture(t)

	wrongPassword := postLogin(t, h, `{"email":"alice@example.com","password":"Wr0ng!pass"}`)
	unknownEmail := postLogin(t, h, `{"email":"bob@example.com","password":"Str0ng!pass"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestLoginInactiveUser(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	digest, err := auth.HashPassword("Str0ng!pass")
	require.NoError(t, err)
	user, err := models.NewUser("carol@example.com", "Carol Doe", digest, now)
	require.NoError(t, err)
	user.IsActive = false
	tokens := auth.NewTokens(auth.TokenConfig{Secret: []byte("secret"), TTL: time.Hour}, clock.NewFixed(now))
	h := NewAuthHandler(service.NewAuthService(&fakeUserRepo{user: user}, tokens))

	rec := postLogin(t, h, `{"email":"carol@example.com","password":"Str0ng!pass"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginBadBody(t *testing.T) {
	h, _, _ := loginFixture(t)
	rec := postLogin(t, h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
