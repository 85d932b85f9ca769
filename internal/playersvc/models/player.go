package models

// Player is a participant. GameID is nil when the player is not in a game;
// it is not checked against the game service.
type Player struct {
	ID     int64  `gorm:"primaryKey"`
	Name   string `gorm:"not null;index"`
	GameID *int64 `gorm:"index"`
}
