package models

import "time"

type UserState struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"not null;uniqueIndex:idx_user_game" json:"user_id"`
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	GameID   uint      `gorm:"not null;uniqueIndex:idx_user_game" json:"game_id"`
	Score    int       `gorm:"not null;default:0" json:"score"`
	Mistakes int       `gorm:"not null;default:0" json:"mistakes"`
	Level    string    `gorm:"size:10;not null;default:'GREEN'" json:"level"`
	JoinedAt time.Time `json:"joined_at"`
}

const (
	UserLevelGreen  = "GREEN"
	UserLevelYellow = "YELLOW"
	UserLevelRed    = "RED"
)
