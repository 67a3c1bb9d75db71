package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionnaireGetBaseInfo(t *testing.T) {
	t.Run("returns display metadata", func(t *testing.T) {
		db := setupTestDB(t)
		svc := NewQuestionnaireService(db)

		seeded := seedQuestionnaire(t, db)

		got, err := svc.GetBaseInfo(seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, seeded.Title, got.Title)
		assert.Equal(t, "1.0.0", got.Version)
	})

	t.Run("missing questionnaire is not found", func(t *testing.T) {
		db := setupTestDB(t)
		svc := NewQuestionnaireService(db)

		_, err := svc.GetBaseInfo(42)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestQuestionnaireGetWithQuestions(t *testing.T) {
	db := setupTestDB(t)
	svc := NewQuestionnaireService(db)

	questionnaire := seedQuestionnaire(t, db)
	second := seedQuestion(t, db, questionnaire.ID, "1.00", subType("anxiety"), 2)
	first := seedQuestion(t, db, questionnaire.ID, "1.00", nil, 1)

	// options inserted out of order to exercise the sort
	late := seedOption(t, db, first.ID, "2.00", 5)
	early := seedOption(t, db, first.ID, "1.00", 1)
	seedOption(t, db, second.ID, "3.00", 0)

	questions, err := svc.GetWithQuestions(questionnaire.ID)
	require.NoError(t, err)
	require.Len(t, questions, 2)

	assert.Equal(t, first.ID, questions[0].ID, "questions ordered by sort_order")
	assert.Equal(t, second.ID, questions[1].ID)

	require.Len(t, questions[0].Options, 2)
	assert.Equal(t, early.ID, questions[0].Options[0].ID, "options ordered by sort_order")
	assert.Equal(t, late.ID, questions[0].Options[1].ID)

	require.Len(t, questions[1].Options, 1)
}
