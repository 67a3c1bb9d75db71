package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/xyzhou0323/weapp-xyz-service/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(
		&models.Counter{},
		&models.User{},
		&models.WechatSession{},
		&models.Questionnaire{},
		&models.Question{},
		&models.Option{},
		&models.UserAnswer{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func seedQuestionnaire(t *testing.T, db *gorm.DB) models.Questionnaire {
	t.Helper()

	questionnaire := models.Questionnaire{
		Title:       "焦虑自评量表",
		Description: "Self-rating anxiety scale",
		Version:     "1.0.0",
		IsPublished: true,
	}
	require.NoError(t, db.Create(&questionnaire).Error)
	return questionnaire
}

func seedQuestion(t *testing.T, db *gorm.DB, questionnaireID uint, weight string, subType *string, sortOrder int) models.Question {
	t.Helper()

	question := models.Question{
		QuestionnaireID: questionnaireID,
		QuestionText:    "最近一周你是否感到紧张?",
		QuestionType:    models.QuestionTypeSingle,
		SortOrder:       sortOrder,
		Weight:          decimal.RequireFromString(weight),
		SubType:         subType,
	}
	require.NoError(t, db.Create(&question).Error)
	return question
}

func seedOption(t *testing.T, db *gorm.DB, questionID uint, score string, sortOrder int) models.Option {
	t.Helper()

	option := models.Option{
		QuestionID: questionID,
		OptionText: "有时",
		Score:      decimal.RequireFromString(score),
		SortOrder:  sortOrder,
	}
	require.NoError(t, db.Create(&option).Error)
	return option
}

func subType(s string) *string {
	return &s
}
