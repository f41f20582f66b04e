package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/vendora/commerce-backend/internal/validate"
)

type Review struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewReview(productID, userID uuid.UUID, rating float64, comment string, now time.Time) (Review, error) {
	if err := validate.Rating(rating); err != nil {
		return Review{}, err
	}
	if err := validate.Comment(comment); err != nil {
		return Review{}, err
	}
	return Review{
		ID:        uuid.New(),
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

type ReviewUpdate struct {
	Rating  *float64
	Comment *string
}

func (r *Review) Apply(upd ReviewUpdate, now time.Time) error {
	if upd.Rating != nil {
		if err := validate.Rating(*upd.Rating); err != nil {
			return err
		}
		r.Rating = *upd.Rating
	}
	if upd.Comment != nil {
		if err := validate.Comment(*upd.Comment); err != nil {
			return err
		}
		r.Comment = *upd.Comment
	}
	r.UpdatedAt = now
	return nil
}
