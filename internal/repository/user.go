package repository

import (
	"context"
	"errors"

	"arriddle/backend/internal/models"

	"gorm.io/gorm"
)

// UserRepository provides access to players, always scoped to one game.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, gameID string, id uint) (*models.User, error)
	ListByGame(ctx context.Context, gameID string) ([]models.User, error)
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, gameID string, id uint) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository backed by db.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

// Create inserts a user under an existing game. A missing parent game is
// ErrNotFound, a duplicate name within the game is ErrConflict.
func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	if err := gameExists(ctx, r.db, user.GameID); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}

func (r *userRepo) FindByID(ctx context.Context, gameID string, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Solved").
		Where("id = ? AND game_id = ?", id, gameID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) ListByGame(ctx context.Context, gameID string) ([]models.User, error) {
	if err := gameExists(ctx, r.db, gameID); err != nil {
		return nil, err
	}
	var users []models.User
	err := r.db.WithContext(ctx).
		Preload("Solved").
		Where("game_id = ?", gameID).
		Find(&users).Error
	return users, err
}

func (r *userRepo) Save(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).
		Omit("Solved", "Game").
		Save(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}

func (r *userRepo) Delete(ctx context.Context, gameID string, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND game_id = ?", id, gameID).
		Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
