package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/xyzhou0323/weapp-xyz-service/internal/models"
)

type AnswerService struct {
	db      *gorm.DB
	scoring *ScoringService
}

func NewAnswerService(db *gorm.DB, scoring *ScoringService) *AnswerService {
	return &AnswerService{db: db, scoring: scoring}
}

type AnswerInput struct {
	QuestionID uint `json:"question_id"`
	OptionID   uint `json:"option_id"`
}

type SubmitResult struct {
	ScoresBySubType map[string]decimal.Decimal
	TotalScore      decimal.Decimal
	AnswerCount     int
}

// SubmitAnswers persists one UserAnswer per entry and returns the user's
// per-sub-scale totals for the questionnaire, all inside a single
// transaction: either every answer lands or none does. Answers are processed
// in input order. Re-submitting the same question appends another row and
// inflates the aggregate; no uniqueness is enforced on (user, question).
func (s *AnswerService) SubmitAnswers(userID, questionnaireID uint, answers []AnswerInput) (*SubmitResult, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: answers must be a non-empty list", ErrValidation)
	}

	var result *SubmitResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, answer := range answers {
			var option models.Option
			if err := tx.First(&option, answer.OptionID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: option %d", ErrInvalidReference, answer.OptionID)
				}
				return err
			}

			// The owning questionnaire rides along for callers that want to
			// cross-check it; a mismatch with questionnaireID is not
			// rejected here.
			var question models.Question
			if err := tx.Preload("Questionnaire").First(&question, answer.QuestionID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: question %d", ErrInvalidReference, answer.QuestionID)
				}
				return err
			}

			score, err := s.scoring.ComputeObtainedScore(&option, &question)
			if err != nil {
				return err
			}

			row := models.UserAnswer{
				UserID:          userID,
				QuestionnaireID: questionnaireID,
				QuestionID:      answer.QuestionID,
				OptionID:        answer.OptionID,
				ObtainedScore:   score,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		scores, err := s.aggregate(tx, userID, questionnaireID)
		if err != nil {
			return err
		}

		total := decimal.Zero
		for _, v := range scores {
			total = total.Add(v)
		}
		result = &SubmitResult{
			ScoresBySubType: scores,
			TotalScore:      total,
			AnswerCount:     len(answers),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AggregateScores sums a user's obtained scores for a questionnaire grouped
// by sub-scale. A user with no answers gets an empty map.
func (s *AnswerService) AggregateScores(userID, questionnaireID uint) (map[string]decimal.Decimal, error) {
	return s.aggregate(s.db, userID, questionnaireID)
}

func (s *AnswerService) aggregate(tx *gorm.DB, userID, questionnaireID uint) (map[string]decimal.Decimal, error) {
	var rows []AnswerScoreRow
	err := tx.Table("user_answers").
		Select("questions.sub_type AS sub_type, user_answers.obtained_score AS obtained_score").
		Joins("JOIN questions ON questions.id = user_answers.question_id").
		Where("user_answers.user_id = ? AND user_answers.questionnaire_id = ?", userID, questionnaireID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return s.scoring.SumBySubType(rows), nil
}
