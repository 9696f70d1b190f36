package models

// Game represents a scavenger-hunt session ("partie").
// Its ID is an opaque token generated server-side, not a sequential key.
type Game struct {
	ID          string `gorm:"size:8;primaryKey"`
	Name        string `gorm:"size:255;unique;not null"`
	Visibility  bool   `gorm:"not null;default:false"`
	Duration    *int
	TimeStart   int64 `gorm:"not null"`
	NbPlayerMax *int

	// Deleting a game removes its keypoints and users with it.
	Keypoints []Keypoint `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	Users     []User     `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

// GamePatch carries the optional fields of a partial game update.
// Nil fields leave the existing value untouched.
type GamePatch struct {
	Name        *string
	Visibility  *bool
	Duration    *int
	TimeStart   *int64
	NbPlayerMax *int
}

// Apply merges the non-nil patch fields into the game.
func (p GamePatch) Apply(game *Game) {
	if p.Name != nil {
		game.Name = *p.Name
	}
	if p.Visibility != nil {
		game.Visibility = *p.Visibility
	}
	if p.Duration != nil {
		game.Duration = p.Duration
	}
	if p.TimeStart != nil {
		game.TimeStart = *p.TimeStart
	}
	if p.NbPlayerMax != nil {
		game.NbPlayerMax = p.NbPlayerMax
	}
}
