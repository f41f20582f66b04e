package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/vendora/commerce-backend/internal/auth"
	"github.com/vendora/commerce-backend/internal/clock"
	"github.com/vendora/commerce-backend/internal/models"
)

type UserRepo interface {
	Create(ctx context.Context, tx *sql.Tx, u models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	Update(ctx context.Context, u models.User) error
}

type AddressRepo interface {
	Create(ctx context.Context, tx *sql.Tx, a models.Address) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Address, error)
}

type UserService struct {
	db          *sql.DB
	userRepo    UserRepo
	addressRepo AddressRepo
	clock       clock.Clock
}

func NewUserService(db *sql.DB, uRepo UserRepo, aRepo AddressRepo, clk clock.Clock) *UserService {
	return &UserService{
		db:          db,
		userRepo:    uRepo,
		addressRepo: aRepo,
		clock:       clk,
	}
}

type CreateUserInput struct {
	Email     string
	FullName  string
	Password  string
	Addresses []models.AddressInput
}

// CreateUser registers a user and any initial addresses in one transaction.
// The raw password is strength-checked and hashed before the user entity is
// built; it is never stored.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (models.User, error) {
	digest, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}

	now := s.clock.Now()
	user, err := models.NewUser(in.Email, in.FullName, digest, now)
	if err != nil {
		return models.User{}, err
	}

	addresses := make([]models.Address, 0, len(in.Addresses))
	for _, ain := range in.Addresses {
		addr, err := models.NewAddress(user.ID, ain, now)
		if err != nil {
			return models.User{}, err
		}
		addresses = append(addresses, addr)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.User{}, fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := s.userRepo.Create(ctx, tx, user); err != nil {
		return models.User{}, err
	}
	for _, addr := range addresses {
		if err := s.addressRepo.Create(ctx, tx, addr); err != nil {
			return models.User{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.User{}, fmt.Errorf("tx commit: %w", err)
	}
	committed = true

	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]models.Address, error) {
	return s.addressRepo.ListByUser(ctx, userID)
}

type UpdateUserInput struct {
	FullName    *string
	Password    *string
	IsActive    *bool
	IsSuperuser *bool
}

func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, in UpdateUserInput) (models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	upd := models.UserUpdate{
		FullName:    in.FullName,
		IsActive:    in.IsActive,
		IsSuperuser: in.IsSuperuser,
	}
	if in.Password != nil {
		digest, err := auth.HashPassword(*in.Password)
		if err != nil {
			return models.User{}, err
		}
		upd.HashedPassword = &digest
	}

	if err := user.Apply(upd, s.clock.Now()); err != nil {
		return models.User{}, err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
