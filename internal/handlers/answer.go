package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/xyzhou0323/weapp-xyz-service/internal/services"
)

type AnswerHandler struct {
	answerService *services.AnswerService
}

func NewAnswerHandler(answerService *services.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

type SubmitAnswersRequest struct {
	QuestionnaireID uint                   `json:"questionnaire_id" binding:"required" example:"1"`
	Answers         []services.AnswerInput `json:"answers" binding:"required,min=1"`
	// Session is read by the auth middleware for clients that cannot set
	// the Authorization header.
	Session string `json:"session,omitempty"`
}

type SubmitAnswersResponse struct {
	TotalScore      string            `json:"total_score" example:"6.00"`
	ScoresBySubType map[string]string `json:"scores_by_subtype"`
	AnswerCount     int               `json:"answer_count" example:"1"`
}

// Submit godoc
// @Summary      Submit questionnaire answers
// @Description  Score and persist the caller's answers, returning per-sub-scale totals
// @Tags         answers
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer session token"
// @Param        request body SubmitAnswersRequest true "Answers"
// @Success      200 {object} Response{data=SubmitAnswersResponse}
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/submit-answer [post]
func (h *AnswerHandler) Submit(c *gin.Context) {
	var req SubmitAnswersRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	userID := c.GetUint("user_id")

	result, err := h.answerService.SubmitAnswers(userID, req.QuestionnaireID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			fail(c, http.StatusBadRequest, err.Error())
		default:
			// Reference errors surface as a generic submit failure.
			fail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	scores := make(map[string]string, len(result.ScoresBySubType))
	for subType, score := range result.ScoresBySubType {
		scores[subType] = score.StringFixed(2)
	}

	ok(c, SubmitAnswersResponse{
		TotalScore:      result.TotalScore.StringFixed(2),
		ScoresBySubType: scores,
		AnswerCount:     result.AnswerCount,
	})
}
