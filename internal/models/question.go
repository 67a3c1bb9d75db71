package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Question struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	QuestionnaireID uint            `gorm:"not null;index" json:"questionnaire_id"`
	Questionnaire   *Questionnaire  `gorm:"foreignKey:QuestionnaireID" json:"-"`
	QuestionText    string          `gorm:"type:text;not null" json:"question_text"`
	QuestionType    string          `gorm:"size:10;not null;default:'single'" json:"question_type"`
	SortOrder       int             `gorm:"not null;default:0" json:"sort_order"`
	Weight          decimal.Decimal `gorm:"type:decimal(5,2);not null;default:1.00" json:"weight"`
	SubType         *string         `gorm:"size:50" json:"sub_type"`
	Options         []Option        `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

const (
	QuestionTypeSingle   = "single"
	QuestionTypeMultiple = "multiple"
)
