package models

import "time"

type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TelegramID int64     `gorm:"not null;uniqueIndex" json:"telegram_id"`
	Username   string    `gorm:"size:100" json:"username"`
	Wins       int       `gorm:"not null;default:0" json:"wins"`
	CreatedAt  time.Time `json:"created_at"`
}
