package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xyzhou0323/weapp-xyz-service/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	Code string `json:"code" binding:"required" example:"0a3Bq...mF1"`
}

// Login godoc
// @Summary      Mini-program login
// @Description  Exchange a wx.login code for a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login code"
// @Success      200 {object} Response{data=services.LoginResult}
// @Failure      401 {object} ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.authService.Login(req.Code)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			fail(c, http.StatusUnauthorized, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, "login failed")
		return
	}

	ok(c, result)
}
