package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vendora/commerce-backend/internal/models"
)

type PaymentRepo struct {
	db *sql.DB
}

func NewPaymentRepo(db *sql.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

const paymentColumns = `id, order_id, amount, currency, status, method, provider_ref, provider_status, created_at, updated_at`

func (r *PaymentRepo) Create(ctx context.Context, p models.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.OrderID, p.Amount, p.Currency, p.Status, p.Method,
		nullString(p.ProviderRef), nullString(p.ProviderStatus), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrConflict
		}
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

func (r *PaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	var p models.Payment
	var status, method string
	var ref, provStatus sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.OrderID, &p.Amount, &p.Currency, &status, &method,
		&ref, &provStatus, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Payment{}, models.ErrNotFound
		}
		return models.Payment{}, fmt.Errorf("get payment: %w", err)
	}
	p.Status = models.PaymentStatus(status)
	p.Method = models.PaymentMethod(method)
	p.ProviderRef = ref.String
	p.ProviderStatus = provStatus.String
	return p, nil
}

func (r *PaymentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus, providerStatus string, now time.Time) error {
	query := `
		UPDATE payments
		SET status = $2, provider_status = $3, updated_at = $4
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id, status, nullString(providerStatus), now)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrNotFound
	}
	return nil
}
