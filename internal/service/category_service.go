package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/vendora/commerce-backend/internal/clock"
	"github.com/vendora/commerce-backend/internal/models"
)

type CategoryRepo interface {
	Create(ctx context.Context, q Querier, c models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (models.Category, error)
	GetByName(ctx context.Context, q Querier, name string) (models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, c models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CategoryService struct {
	q            Querier
	categoryRepo CategoryRepo
	clock        clock.Clock
}

func NewCategoryService(q Querier, repo CategoryRepo, clk clock.Clock) *CategoryService {
	return &CategoryService{q: q, categoryRepo: repo, clock: clk}
}

func (s *CategoryService) CreateCategory(ctx context.Context, name, description string) (models.Category, error) {
	category, err := models.NewCategory(name, description, s.clock.Now())
	if err != nil {
		return models.Category{}, err
	}
	if err := s.categoryRepo.Create(ctx, s.q, category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, upd models.CategoryUpdate) (models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return models.Category{}, err
	}
	if err := category.Apply(upd); err != nil {
		return models.Category{}, err
	}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.categoryRepo.Delete(ctx, id)
}
