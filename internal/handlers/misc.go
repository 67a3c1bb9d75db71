package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary      Liveness probe
// @Tags         misc
// @Success      200 {string} string "I'm ok"
// @Router       /api/health [get]
func Health(c *gin.Context) {
	c.String(http.StatusOK, "I'm ok")
}

// WxOpenID echoes the openid header the WeChat cloud gateway injects on
// requests coming from the mini-program.
//
// @Summary      Get the caller's WeChat openid
// @Tags         misc
// @Success      200 {string} string "openid"
// @Router       /api/wx_openid [get]
func WxOpenID(c *gin.Context) {
	if c.GetHeader("x-wx-source") == "" {
		c.Status(http.StatusOK)
		return
	}
	c.String(http.StatusOK, c.GetHeader("x-wx-openid"))
}
