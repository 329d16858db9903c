package models

type Theme struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:255;uniqueIndex;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Questions   []Question `gorm:"foreignKey:ThemeID" json:"questions,omitempty"`
}
