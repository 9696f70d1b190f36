package database

import (
	"arriddle/backend/internal/models"
	"arriddle/backend/pkg/token"

	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }

// Seed inserts the demo games if the database is empty. On an already
// initialized database it is a no-op.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Game{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	games := []models.Game{
		{
			ID:          token.NewGameID(),
			Name:        "Partie 1",
			Visibility:  true,
			Duration:    intPtr(7200),
			TimeStart:   1591019348,
			NbPlayerMax: intPtr(12),
			Keypoints: []models.Keypoint{
				{
					Name:        "Centrale Lille",
					Description: "Quelle est l'année de fondation de l'école ?",
					Solution:    "1854",
					Points:      10,
					Latitude:    floatPtr(50.6087),
					Longitude:   floatPtr(3.1480),
					URLCible:    strPtr("https://duckduckgo.com"),
				},
			},
		},
		{
			ID:          token.NewGameID(),
			Name:        "Partie 2",
			Visibility:  true,
			Duration:    intPtr(3600),
			TimeStart:   1591039848,
			NbPlayerMax: intPtr(12),
			Keypoints: []models.Keypoint{
				{
					Name:        "IG21",
					Description: "Combien de serveurs dans la baie ?",
					Solution:    "12",
					Points:      30,
					URLCible:    strPtr("https://duckduckgo.com"),
				},
				{
					Name:        "ITEM",
					Description: "Quelle association occupe le local ?",
					Solution:    "Rezoleo",
					Points:      20,
					URLCible:    strPtr("https://duckduckgo.com"),
				},
			},
		},
		{
			ID:          token.NewGameID(),
			Name:        "Partie 3",
			Visibility:  false,
			Duration:    intPtr(9780),
			TimeStart:   1591019348,
			NbPlayerMax: intPtr(8),
			Keypoints: []models.Keypoint{
				{
					Name:        "Centrale Paris",
					Description: "Quel est le nouveau nom de l'école ?",
					Solution:    "CentraleSupélec",
					Points:      10,
					URLCible:    strPtr("https://duckduckgo.com"),
				},
				{
					Name:        "Centrale Lyon",
					Description: "Dans quelle ville se trouve le campus ?",
					Solution:    "Écully",
					Points:      10,
					URLCible:    strPtr("https://duckduckgo.com"),
				},
			},
		},
	}

	return db.Create(&games).Error
}
