package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/vendora/commerce-backend/internal/validate"
)

type Address struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	Street            string    `json:"street"`
	City              string    `json:"city"`
	State             string    `json:"state"`
	Country           string    `json:"country"`
	PostalCode        string    `json:"postal_code"`
	IsDefaultShipping bool      `json:"is_default_shipping"`
	IsDefaultBilling  bool      `json:"is_default_billing"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type AddressInput struct {
	Street            string `json:"street"`
	City              string `json:"city"`
	State             string `json:"state"`
	Country           string `json:"country"`
	PostalCode        string `json:"postal_code"`
	IsDefaultShipping bool   `json:"is_default_shipping"`
	IsDefaultBilling  bool   `json:"is_default_billing"`
}

func NewAddress(userID uuid.UUID, in AddressInput, now time.Time) (Address, error) {
	street, err := validate.NonEmpty("street", in.Street)
	if err != nil {
		return Address{}, err
	}
	city, err := validate.NonEmpty("city", in.City)
	if err != nil {
		return Address{}, err
	}
	state, err := validate.NonEmpty("state", in.State)
	if err != nil {
		return Address{}, err
	}
	country, err := validate.NonEmpty("country", in.Country)
	if err != nil {
		return Address{}, err
	}
	postal, err := validate.PostalCode(in.PostalCode)
	if err != nil {
		return Address{}, err
	}
	return Address{
		ID:                uuid.New(),
		UserID:            userID,
		Street:            street,
		City:              city,
		State:             state,
		Country:           country,
		PostalCode:        postal,
		IsDefaultShipping: in.IsDefaultShipping,
		IsDefaultBilling:  in.IsDefaultBilling,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}
