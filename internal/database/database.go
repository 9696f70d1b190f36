package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"arriddle/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database for the given driver and runs migrations.
func Connect(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite", "sqlite3":
		dialector = sqlite.Open(SQLiteDSN(dsn))
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: customLogger,
		// Map driver-specific constraint errors to gorm.ErrDuplicatedKey etc.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// SQLiteDSN turns foreign key enforcement on for every SQLite connection;
// without it the cascade rules on games are silently ignored.
func SQLiteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=1"
}

// Migrate creates or updates the schema for all entities. The solves join
// table is registered first so the many-to-many relation picks up the
// game-scoped join model.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.User{}, "Solved", &models.Solve{}); err != nil {
		return fmt.Errorf("failed to set up solves join table: %w", err)
	}
	if err := db.SetupJoinTable(&models.Keypoint{}, "Solvers", &models.Solve{}); err != nil {
		return fmt.Errorf("failed to set up solves join table: %w", err)
	}

	if err := db.AutoMigrate(&models.Game{}, &models.Keypoint{}, &models.User{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
