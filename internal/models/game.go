package models

import "time"

type Game struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	ChatID    int64       `gorm:"not null;index" json:"chat_id"`
	MasterID  uint        `gorm:"not null;index" json:"master_id"`
	Master    User        `gorm:"foreignKey:MasterID" json:"master,omitempty"`
	ThemeID   *uint       `gorm:"index" json:"theme_id,omitempty"`
	Theme     *Theme      `gorm:"foreignKey:ThemeID" json:"theme,omitempty"`
	Status    string      `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	States    []UserState `gorm:"foreignKey:GameID" json:"states,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	StartedAt *time.Time  `json:"started_at,omitempty"`
}

const (
	GameStatusPending       = "PENDING"
	GameStatusTopicSelected = "TOPIC_SELECTED"
	GameStatusActive        = "ACTIVE"
	GameStatusFinished      = "FINISHED"
	GameStatusCanceled      = "CANCELED"
)

// OpenStatuses are the states in which a chat is considered busy:
// at most one game per chat may be in any of them.
var OpenStatuses = []string{GameStatusPending, GameStatusTopicSelected, GameStatusActive}
