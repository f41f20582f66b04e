package service

import (
	"context"

	"github.com/vendora/commerce-backend/internal/auth"
	"github.com/vendora/commerce-backend/internal/models"
)

type AuthService struct {
	userRepo UserRepo
	tokens   *auth.Tokens
}

func NewAuthService(uRepo UserRepo, tokens *auth.Tokens) *AuthService {
	return &AuthService{userRepo: uRepo, tokens: tokens}
}

// Login verifies the credentials and issues a bearer token. Unknown email
// and wrong password produce the same error so the response does not leak
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", models.ErrUnauthorized
	}
	if !user.IsActive || !auth.CheckPassword(password, user.HashedPassword) {
		return "", models.ErrUnauthorized
	}
	return s.tokens.Issue(user.ID.String())
}
