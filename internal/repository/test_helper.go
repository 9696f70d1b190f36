package repository

import (
	"context"
	"testing"

	"arriddle/backend/internal/database"
	"arriddle/backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(":memory:")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	})

	return db
}

func createTestGame(t *testing.T, db *gorm.DB, name string) *models.Game {
	t.Helper()

	game := &models.Game{
		Name:       name,
		Visibility: true,
		TimeStart:  1591019348,
	}
	require.NoError(t, NewGameRepository(db).Create(context.Background(), game))
	return game
}

func createTestKeypoint(t *testing.T, db *gorm.DB, gameID, name string, points int) *models.Keypoint {
	t.Helper()

	keypoint := &models.Keypoint{
		Name:   name,
		Points: points,
		GameID: gameID,
	}
	require.NoError(t, NewKeypointRepository(db).Create(context.Background(), keypoint))
	return keypoint
}

func createTestUser(t *testing.T, db *gorm.DB, gameID, name string) *models.User {
	t.Helper()

	user := &models.User{
		Name:   name,
		GameID: gameID,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}
