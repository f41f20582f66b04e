// Package auth holds the credential and token modules: bcrypt password
// hashing and HS256 bearer tokens.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/vendora/commerce-backend/internal/validate"
)

// HashPassword rejects weak secrets before hashing, then produces a salted
// bcrypt digest. Two calls on the same secret yield different digests.
func HashPassword(password string) (string, error) {
	if err := validate.PasswordStrength(password); err != nil {
		return "", err
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether the candidate matches the stored digest.
// A mismatch returns false, never an error.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
