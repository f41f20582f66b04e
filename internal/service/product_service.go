package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendora/commerce-backend/internal/clock"
	"github.com/vendora/commerce-backend/internal/models"
)

type ProductRepo interface {
	Create(ctx context.Context, q Querier, p models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, p models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductService struct {
	db           *sql.DB
	productRepo  ProductRepo
	categoryRepo CategoryRepo
	clock        clock.Clock
}

func NewProductService(db *sql.DB, pRepo ProductRepo, cRepo CategoryRepo, clk clock.Clock) *ProductService {
	return &ProductService{
		db:           db,
		productRepo:  pRepo,
		categoryRepo: cRepo,
		clock:        clk,
	}
}

type CreateProductInput struct {
	CategoryName string
	Name         string
	Description  string
	Price        decimal.Decimal
	Stock        int
}

// CreateProduct resolves the category by name, creating it when missing,
// and inserts the product in the same transaction.
func (s *ProductService) CreateProduct(ctx context.Context, in CreateProductInput) (models.Product, error) {
	now := s.clock.Now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Product{}, fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	category, err := s.getOrCreateCategory(ctx, tx, in.CategoryName, now)
	if err != nil {
		return models.Product{}, err
	}

	product, err := models.NewProduct(category.ID, in.Name, in.Description, in.Price, in.Stock, now)
	if err != nil {
		return models.Product{}, err
	}
	if err := s.productRepo.Create(ctx, tx, product); err != nil {
		return models.Product{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Product{}, fmt.Errorf("tx commit: %w", err)
	}
	committed = true

	return product, nil
}

func (s *ProductService) getOrCreateCategory(ctx context.Context, tx *sql.Tx, name string, now time.Time) (models.Category, error) {
	category, err := s.categoryRepo.GetByName(ctx, tx, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return models.Category{}, err
	}

	category, err = models.NewCategory(name, "", now)
	if err != nil {
		return models.Category{}, err
	}
	if err := s.categoryRepo.Create(ctx, tx, category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, upd models.ProductUpdate) (models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return models.Product{}, err
	}
	if err := product.Apply(upd, s.clock.Now()); err != nil {
		return models.Product{}, err
	}
	if err := s.productRepo.Update(ctx, product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}
