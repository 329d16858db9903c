package models

type Question struct {
	ID      uint     `gorm:"primaryKey" json:"id"`
	ThemeID uint     `gorm:"not null;index" json:"theme_id"`
	Title   string   `gorm:"size:500;uniqueIndex;not null" json:"title"`
	Level   string   `gorm:"size:10;not null;default:'GREEN'" json:"level"`
	Answers []Answer `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

const (
	QuestionLevelGreen  = "GREEN"
	QuestionLevelYellow = "YELLOW"
	QuestionLevelRed    = "RED"
)
