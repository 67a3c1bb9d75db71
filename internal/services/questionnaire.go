package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/xyzhou0323/weapp-xyz-service/internal/models"
)

type QuestionnaireService struct {
	db *gorm.DB
}

func NewQuestionnaireService(db *gorm.DB) *QuestionnaireService {
	return &QuestionnaireService{db: db}
}

// GetBaseInfo returns the questionnaire's display metadata.
func (s *QuestionnaireService) GetBaseInfo(id uint) (*models.Questionnaire, error) {
	var questionnaire models.Questionnaire
	err := s.db.Select("id", "title", "description", "version").
		First(&questionnaire, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &questionnaire, nil
}

// GetWithQuestions returns the questionnaire's questions with their options
// nested, questions and options each ordered by sort_order.
func (s *QuestionnaireService) GetWithQuestions(id uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("questionnaire_id = ?", id).
		Order("sort_order ASC").
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
