package models

// Keypoint is a physical checkpoint of a game: a riddle anchored to a
// location, worth a number of points.
type Keypoint struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null;uniqueIndex:idx_keypoint_name_game"`
	Description string
	Solution    string
	Points      int `gorm:"not null"`
	Latitude    *float64
	Longitude   *float64
	URLCible    *string `gorm:"column:url_cible;size:512"`
	GameID      string  `gorm:"size:8;not null;uniqueIndex:idx_keypoint_name_game"`

	Game    Game    `gorm:"foreignKey:GameID"`
	Solvers []*User `gorm:"many2many:solves;constraint:OnDelete:CASCADE"`
}

// KeypointPatch carries the optional fields of a partial keypoint update.
type KeypointPatch struct {
	Name        *string
	Description *string
	Solution    *string
	Points      *int
	Latitude    *float64
	Longitude   *float64
	URLCible    *string
}

// Apply merges the non-nil patch fields into the keypoint.
func (p KeypointPatch) Apply(keypoint *Keypoint) {
	if p.Name != nil {
		keypoint.Name = *p.Name
	}
	if p.Description != nil {
		keypoint.Description = *p.Description
	}
	if p.Solution != nil {
		keypoint.Solution = *p.Solution
	}
	if p.Points != nil {
		keypoint.Points = *p.Points
	}
	if p.Latitude != nil {
		keypoint.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		keypoint.Longitude = p.Longitude
	}
	if p.URLCible != nil {
		keypoint.URLCible = p.URLCible
	}
}
