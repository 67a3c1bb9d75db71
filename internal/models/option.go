package models

import "github.com/shopspring/decimal"

type Option struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	QuestionID uint            `gorm:"not null;index" json:"question_id"`
	OptionText string          `gorm:"size:500;not null" json:"option_text"`
	IsCorrect  bool            `gorm:"not null;default:false" json:"is_correct"`
	Score      decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"score"`
	SortOrder  int             `gorm:"not null;default:0" json:"sort_order"`
}
