package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/vendora/commerce-backend/internal/validate"
)

type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewCategory(name, description string, now time.Time) (Category, error) {
	name, err := validate.Title("name", name)
	if err != nil {
		return Category{}, err
	}
	description, err = validate.Description("description", description)
	if err != nil {
		return Category{}, err
	}
	return Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
	}, nil
}

type CategoryUpdate struct {
	Name        *string
	Description *string
}

func (c *Category) Apply(upd CategoryUpdate) error {
	if upd.Name != nil {
		name, err := validate.Title("name", *upd.Name)
		if err != nil {
			return err
		}
		c.Name = name
	}
	if upd.Description != nil {
		desc, err := validate.Description("description", *upd.Description)
		if err != nil {
			return err
		}
		c.Description = desc
	}
	return nil
}
