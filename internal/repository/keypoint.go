package repository

import (
	"context"
	"errors"

	"arriddle/backend/internal/models"

	"gorm.io/gorm"
)

// KeypointRepository provides access to keypoints, always scoped to one
// game. Lookups filter on the keypoint's own game_id column, so a leaf id
// belonging to another game is never returned.
type KeypointRepository interface {
	Create(ctx context.Context, keypoint *models.Keypoint) error
	FindByID(ctx context.Context, gameID string, id uint) (*models.Keypoint, error)
	ListByGame(ctx context.Context, gameID string) ([]models.Keypoint, error)
	Save(ctx context.Context, keypoint *models.Keypoint) error
	Delete(ctx context.Context, gameID string, id uint) error
}

type keypointRepo struct {
	db *gorm.DB
}

// NewKeypointRepository creates a keypoint repository backed by db.
func NewKeypointRepository(db *gorm.DB) KeypointRepository {
	return &keypointRepo{db: db}
}

// Create inserts a keypoint under an existing game. A missing parent game
// is ErrNotFound, a duplicate name within the game is ErrConflict.
func (r *keypointRepo) Create(ctx context.Context, keypoint *models.Keypoint) error {
	if err := gameExists(ctx, r.db, keypoint.GameID); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Create(keypoint).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}

func (r *keypointRepo) FindByID(ctx context.Context, gameID string, id uint) (*models.Keypoint, error) {
	var keypoint models.Keypoint
	err := r.db.WithContext(ctx).
		Preload("Solvers").
		Where("id = ? AND game_id = ?", id, gameID).
		First(&keypoint).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &keypoint, nil
}

func (r *keypointRepo) ListByGame(ctx context.Context, gameID string) ([]models.Keypoint, error) {
	if err := gameExists(ctx, r.db, gameID); err != nil {
		return nil, err
	}
	var keypoints []models.Keypoint
	err := r.db.WithContext(ctx).
		Preload("Solvers").
		Where("game_id = ?", gameID).
		Find(&keypoints).Error
	return keypoints, err
}

func (r *keypointRepo) Save(ctx context.Context, keypoint *models.Keypoint) error {
	err := r.db.WithContext(ctx).
		Omit("Solvers", "Game").
		Save(keypoint).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}

func (r *keypointRepo) Delete(ctx context.Context, gameID string, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND game_id = ?", id, gameID).
		Delete(&models.Keypoint{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// gameExists reports ErrNotFound when no game with the given id exists.
func gameExists(ctx context.Context, db *gorm.DB, gameID string) error {
	var count int64
	if err := db.WithContext(ctx).
		Model(&models.Game{}).
		Where("id = ?", gameID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
