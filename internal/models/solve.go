package models

// Solve records that a user has claimed a keypoint. It doubles as the
// join table of the User<->Keypoint many-to-many relation; the game id is
// part of the key so a solve is always scoped to one game.
// The composite primary key gives the relation set semantics: a pair can
// be recorded at most once.
type Solve struct {
	UserID     uint   `gorm:"primaryKey;autoIncrement:false"`
	KeypointID uint   `gorm:"primaryKey;autoIncrement:false"`
	GameID     string `gorm:"size:8;primaryKey"`
}
