package repository

import (
	"context"
	"errors"

	"arriddle/backend/internal/models"

	"gorm.io/gorm"
)

// SolveRepository records keypoint solves and awards their points.
type SolveRepository interface {
	// Record registers that the user solved the keypoint, both scoped to
	// gameID, and credits the keypoint's points to the user in the same
	// transaction. The returned int is the number of points awarded; a
	// replayed solve awards 0 under ReplayIgnore and fails with
	// ErrAlreadySolved under ReplayReject.
	Record(ctx context.Context, gameID string, userID, keypointID uint, policy ReplayPolicy) (*models.Solve, int, error)
}

type solveRepo struct {
	db *gorm.DB
}

// NewSolveRepository creates a solve repository backed by db.
func NewSolveRepository(db *gorm.DB) SolveRepository {
	return &solveRepo{db: db}
}

func (r *solveRepo) Record(ctx context.Context, gameID string, userID, keypointID uint, policy ReplayPolicy) (*models.Solve, int, error) {
	var (
		solve   models.Solve
		awarded int
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ? AND game_id = ?", userID, gameID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var keypoint models.Keypoint
		if err := tx.Where("id = ? AND game_id = ?", keypointID, gameID).First(&keypoint).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var existing models.Solve
		err := tx.Where("user_id = ? AND keypoint_id = ?", userID, keypointID).First(&existing).Error
		if err == nil {
			if policy == ReplayReject {
				return ErrAlreadySolved
			}
			solve = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		solve = models.Solve{UserID: userID, KeypointID: keypointID, GameID: gameID}
		if err := tx.Create(&solve).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadySolved
			}
			return err
		}

		awarded = keypoint.Points
		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("points", gorm.Expr("points + ?", keypoint.Points)).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return &solve, awarded, nil
}
