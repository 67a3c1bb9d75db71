package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xyzhou0323/weapp-xyz-service/internal/models"
	"github.com/xyzhou0323/weapp-xyz-service/internal/services"
)

type QuestionnaireHandler struct {
	questionnaireService *services.QuestionnaireService
}

func NewQuestionnaireHandler(questionnaireService *services.QuestionnaireService) *QuestionnaireHandler {
	return &QuestionnaireHandler{questionnaireService: questionnaireService}
}

type QuestionnaireResponse struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Version     string            `json:"version"`
	Questions   []models.Question `json:"questions"`
}

// Get godoc
// @Summary      Get a questionnaire
// @Description  Questionnaire metadata with nested questions and options
// @Tags         questionnaires
// @Produce      json
// @Param        id path int true "Questionnaire ID"
// @Success      200 {object} Response{data=QuestionnaireResponse}
// @Failure      404 {object} ErrorResponse
// @Router       /api/questionnaire/{id} [get]
func (h *QuestionnaireHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid questionnaire id")
		return
	}

	questionnaire, err := h.questionnaireService.GetBaseInfo(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			fail(c, http.StatusNotFound, "questionnaire not found")
			return
		}
		fail(c, http.StatusInternalServerError, "failed to load questionnaire")
		return
	}

	questions, err := h.questionnaireService.GetWithQuestions(uint(id))
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load questions")
		return
	}

	ok(c, QuestionnaireResponse{
		ID:          questionnaire.ID,
		Title:       questionnaire.Title,
		Description: questionnaire.Description,
		Version:     questionnaire.Version,
		Questions:   questions,
	})
}
