package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/vendora/commerce-backend/internal/validate"
)

// User is a registered account. HashedPassword is never serialized.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	FullName       string    `json:"full_name"`
	IsActive       bool      `json:"is_active"`
	IsSuperuser    bool      `json:"is_superuser"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser validates untrusted input and builds a user. The password must
// already be hashed by the credential module; raw secrets never reach here.
func NewUser(email, fullName, hashedPassword string, now time.Time) (User, error) {
	email, err := validate.Email(email)
	if err != nil {
		return User{}, err
	}
	fullName, err = validate.PersonName(fullName)
	if err != nil {
		return User{}, err
	}
	return User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: hashedPassword,
		FullName:       fullName,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// UserUpdate carries optional fields for a partial update.
type UserUpdate struct {
	FullName       *string
	HashedPassword *string
	IsActive       *bool
	IsSuperuser    *bool
}

// Apply validates and merges the update into the user.
func (u *User) Apply(upd UserUpdate, now time.Time) error {
	if upd.FullName != nil {
		name, err := validate.PersonName(*upd.FullName)
		if err != nil {
			return err
		}
		u.FullName = name
	}
	if upd.HashedPassword != nil {
		u.HashedPassword = *upd.HashedPassword
	}
	if upd.IsActive != nil {
		u.IsActive = *upd.IsActive
	}
	if upd.IsSuperuser != nil {
		u.IsSuperuser = *upd.IsSuperuser
	}
	u.UpdatedAt = now
	return nil
}
