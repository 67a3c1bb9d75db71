package models

import "github.com/shopspring/decimal"

// UserAnswer is an append-only log: one row per submitted answer, never
// updated or deleted. ObtainedScore is fixed at submission time and is not
// recomputed when the referenced option or question changes later.
type UserAnswer struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"not null;index:idx_user_questionnaire" json:"user_id"`
	QuestionnaireID uint            `gorm:"not null;index:idx_user_questionnaire" json:"questionnaire_id"`
	QuestionID      uint            `gorm:"not null" json:"question_id"`
	OptionID        uint            `gorm:"not null" json:"option_id"`
	ObtainedScore   decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"obtained_score"`
}
