package models

// User is a player participating in one game, accumulating points as
// they solve keypoints.
type User struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"size:255;not null;uniqueIndex:idx_user_name_game"`
	Points int    `gorm:"not null;default:0"`
	GameID string `gorm:"size:8;not null;uniqueIndex:idx_user_name_game"`

	Game   Game        `gorm:"foreignKey:GameID"`
	Solved []*Keypoint `gorm:"many2many:solves;constraint:OnDelete:CASCADE"`
}

// UserPatch carries the optional fields of a partial user update.
type UserPatch struct {
	Name   *string
	Points *int
}

// Apply merges the non-nil patch fields into the user.
func (p UserPatch) Apply(user *User) {
	if p.Name != nil {
		user.Name = *p.Name
	}
	if p.Points != nil {
		user.Points = *p.Points
	}
}
