package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xyzhou0323/weapp-xyz-service/internal/services"
)

type CounterHandler struct {
	counterService *services.CounterService
}

func NewCounterHandler(counterService *services.CounterService) *CounterHandler {
	return &CounterHandler{counterService: counterService}
}

type UpdateCountRequest struct {
	Action string `json:"action" binding:"required" example:"inc"`
}

// Update godoc
// @Summary      Update the visit counter
// @Description  "inc" records a visit, "clear" resets the counter
// @Tags         counter
// @Accept       json
// @Produce      json
// @Param        request body UpdateCountRequest true "Action"
// @Success      200 {object} Response{data=int}
// @Failure      400 {object} ErrorResponse
// @Router       /api/count [post]
func (h *CounterHandler) Update(c *gin.Context) {
	var req UpdateCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	// Unknown actions fall through to a plain read.
	var (
		count int64
		err   error
	)
	switch req.Action {
	case "inc":
		count, err = h.counterService.Increment()
	case "clear":
		if err = h.counterService.Clear(); err == nil {
			count, err = h.counterService.Count()
		}
	default:
		count, err = h.counterService.Count()
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to update counter")
		return
	}
	ok(c, count)
}

// Get godoc
// @Summary      Get the visit counter
// @Tags         counter
// @Produce      json
// @Success      200 {object} Response{data=int}
// @Router       /api/count [get]
func (h *CounterHandler) Get(c *gin.Context) {
	count, err := h.counterService.Count()
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to read counter")
		return
	}
	ok(c, count)
}
