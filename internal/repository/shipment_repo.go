package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vendora/commerce-backend/internal/models"
)

type ShipmentRepo struct {
	db *sql.DB
}

func NewShipmentRepo(db *sql.DB) *ShipmentRepo {
	return &ShipmentRepo{db: db}
}

const shipmentColumns = `id, order_id, tracking_number, status, shipping_address_id, billing_address_id, created_at, updated_at`

func (r *ShipmentRepo) Create(ctx context.Context, s models.Shipment) error {
	query := `
		INSERT INTO shipments (` + shipmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.OrderID, s.TrackingNumber, s.Status, s.ShippingAddressID, s.BillingAddressID, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create shipment: %w", err)
	}
	return nil
}

func (r *ShipmentRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE id = $1`

	var s models.Shipment
	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.OrderID, &s.TrackingNumber, &status, &s.ShippingAddressID, &s.BillingAddressID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Shipment{}, models.ErrNotFound
		}
		return models.Shipment{}, fmt.Errorf("get shipment: %w", err)
	}
	s.Status = models.ShipmentStatus(status)
	return s, nil
}

func (r *ShipmentRepo) Update(ctx context.Context, s models.Shipment) error {
	query := `
		UPDATE shipments
		SET tracking_number = $2, status = $3, updated_at = $4
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, s.ID, s.TrackingNumber, s.Status, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update shipment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrNotFound
	}
	return nil
}
