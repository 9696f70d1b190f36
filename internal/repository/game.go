package repository

import (
	"context"
	"errors"
	"fmt"

	"arriddle/backend/internal/models"
	"arriddle/backend/pkg/token"

	"gorm.io/gorm"
)

// createAttempts bounds the id-collision retry loop on game creation.
const createAttempts = 5

// GameRepository provides access to games.
type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	FindByID(ctx context.Context, id string) (*models.Game, error)
	List(ctx context.Context) ([]models.Game, error)
	Save(ctx context.Context, game *models.Game) error
	Delete(ctx context.Context, id string) error
}

type gameRepo struct {
	db *gorm.DB
	// newID draws a candidate game id; swapped out in tests to force
	// collisions.
	newID func() string
}

// NewGameRepository creates a game repository backed by db.
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepo{db: db, newID: token.NewGameID}
}

// Create inserts a game, generating its id token. A duplicate name is
// reported as ErrConflict; an id collision is retried with a fresh token.
func (r *gameRepo) Create(ctx context.Context, game *models.Game) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Game{}).
		Where("name = ?", game.Name).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrConflict
	}

	for attempt := 0; attempt < createAttempts; attempt++ {
		game.ID = r.newID()
		err := r.db.WithContext(ctx).Create(game).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		// The name was checked above, so a duplicated key here is an id
		// collision; draw a new token.
	}
	return fmt.Errorf("could not allocate a unique game id after %d attempts", createAttempts)
}

func (r *gameRepo) FindByID(ctx context.Context, id string) (*models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).
		Preload("Keypoints.Solvers").
		Preload("Users.Solved").
		Where("id = ?", id).
		First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (r *gameRepo) List(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	err := r.db.WithContext(ctx).
		Preload("Keypoints.Solvers").
		Preload("Users.Solved").
		Find(&games).Error
	return games, err
}

// Save persists a modified game. A name collision with another game is
// reported as ErrConflict.
func (r *gameRepo) Save(ctx context.Context, game *models.Game) error {
	err := r.db.WithContext(ctx).
		Omit("Keypoints", "Users").
		Save(game).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}

// Delete removes a game; its keypoints, users and solves go with it via
// the store's cascade rules.
func (r *gameRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Game{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
