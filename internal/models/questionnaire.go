package models

import "time"

type Questionnaire struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Version     string     `gorm:"size:20;not null;default:'1.0.0'" json:"version"`
	IsPublished bool       `gorm:"not null;default:false" json:"is_published"`
	Questions   []Question `gorm:"foreignKey:QuestionnaireID" json:"questions,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
