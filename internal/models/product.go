package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendora/commerce-backend/internal/validate"
)

type Product struct {
	ID          uuid.UUID       `json:"id"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func NewProduct(categoryID uuid.UUID, name, description string, price decimal.Decimal, stock int, now time.Time) (Product, error) {
	name, err := validate.Title("name", name)
	if err != nil {
		return Product{}, err
	}
	description, err = validate.Description("description", description)
	if err != nil {
		return Product{}, err
	}
	if err := validate.Price(price); err != nil {
		return Product{}, err
	}
	if err := validate.Stock(stock); err != nil {
		return Product{}, err
	}
	return Product{
		ID:          uuid.New(),
		CategoryID:  categoryID,
		Name:        name,
		Description: description,
		Price:       price.Round(2),
		Stock:       stock,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

type ProductUpdate struct {
	CategoryID  *uuid.UUID
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	IsActive    *bool
}

func (p *Product) Apply(upd ProductUpdate, now time.Time) error {
	if upd.Name != nil {
		name, err := validate.Title("name", *upd.Name)
		if err != nil {
			return err
		}
		p.Name = name
	}
	if upd.Description != nil {
		desc, err := validate.Description("description", *upd.Description)
		if err != nil {
			return err
		}
		p.Description = desc
	}
	if upd.Price != nil {
		if err := validate.Price(*upd.Price); err != nil {
			return err
		}
		p.Price = upd.Price.Round(2)
	}
	if upd.Stock != nil {
		if err := validate.Stock(*upd.Stock); err != nil {
			return err
		}
		p.Stock = *upd.Stock
	}
	if upd.CategoryID != nil {
		p.CategoryID = *upd.CategoryID
	}
	if upd.IsActive != nil {
		p.IsActive = *upd.IsActive
	}
	p.UpdatedAt = now
	return nil
}
