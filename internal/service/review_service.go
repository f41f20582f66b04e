package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/vendora/commerce-backend/internal/clock"
	"github.com/vendora/commerce-backend/internal/models"
)

type ReviewRepo interface {
	Create(ctx context.Context, rev models.Review) error
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error)
}

type ReviewService struct {
	reviewRepo  ReviewRepo
	productRepo ProductRepo
	clock       clock.Clock
}

func NewReviewService(rRepo ReviewRepo, pRepo ProductRepo, clk clock.Clock) *ReviewService {
	return &ReviewService{reviewRepo: rRepo, productRepo: pRepo, clock: clk}
}

func (s *ReviewService) CreateReview(ctx context.Context, productID, userID uuid.UUID, rating float64, comment string) (models.Review, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return models.Review{}, err
	}
	review, err := models.NewReview(productID, userID, rating, comment, s.clock.Now())
	if err != nil {
		return models.Review{}, err
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return models.Review{}, err
	}
	return review, nil
}

func (s *ReviewService) ListReviews(ctx context.Context, productID uuid.UUID) ([]models.Review, error) {
	return s.reviewRepo.ListByProduct(ctx, productID)
}
