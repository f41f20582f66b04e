package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vendora/commerce-backend/internal/models"
)

type AddressRepo struct {
	db *sql.DB
}

func NewAddressRepo(db *sql.DB) *AddressRepo {
	return &AddressRepo{db: db}
}

const addressColumns = `id, user_id, street, city, state, country, postal_code, is_default_shipping, is_default_billing, created_at, updated_at`

func (r *AddressRepo) Create(ctx context.Context, tx *sql.Tx, a models.Address) error {
	query := `
		INSERT INTO addresses (` + addressColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := tx.ExecContext(ctx, query,
		a.ID, a.UserID, a.Street, a.City, a.State, a.Country, a.PostalCode,
		a.IsDefaultShipping, a.IsDefaultBilling, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create address: %w", err)
	}
	return nil
}

func (r *AddressRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1`

	var a models.Address
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.UserID, &a.Street, &a.City, &a.State, &a.Country, &a.PostalCode,
		&a.IsDefaultShipping, &a.IsDefaultBilling, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Address{}, models.ErrNotFound
		}
		return models.Address{}, fmt.Errorf("get address: %w", err)
	}
	return a, nil
}

func (r *AddressRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()

	var addresses []models.Address
	for rows.Next() {
		var a models.Address
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Street, &a.City, &a.State, &a.Country, &a.PostalCode,
			&a.IsDefaultShipping, &a.IsDefaultBilling, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}
