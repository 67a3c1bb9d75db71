package services

import (
	"github.com/shopspring/decimal"

	"github.com/xyzhou0323/weapp-xyz-service/internal/models"
)

// SubTypeUnclassified buckets answers whose question has no sub-scale label.
const SubTypeUnclassified = "未分类"

// AnswerScoreRow is one persisted answer joined with its question's
// sub-scale label, the input shape for per-sub-scale summation.
type AnswerScoreRow struct {
	SubType       *string
	ObtainedScore decimal.Decimal
}

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// ComputeObtainedScore returns option score × question weight, rounded to
// the 2 fractional digits the decimal(5,2) columns carry. Pure; callers
// resolve both records first.
func (s *ScoringService) ComputeObtainedScore(option *models.Option, question *models.Question) (decimal.Decimal, error) {
	if option == nil || question == nil {
		return decimal.Zero, ErrNotFound
	}
	return option.Score.Mul(question.Weight).Round(2), nil
}

// SumBySubType groups obtained scores by sub-scale. A nil or empty sub_type
// lands in the SubTypeUnclassified bucket, never dropped. Summation stays in
// Go decimals rather than SQL so the datastore's decimal formatting is not
// part of the result.
func (s *ScoringService) SumBySubType(rows []AnswerScoreRow) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		key := SubTypeUnclassified
		if row.SubType != nil && *row.SubType != "" {
			key = *row.SubType
		}
		totals[key] = totals[key].Add(row.ObtainedScore)
	}
	return totals
}
