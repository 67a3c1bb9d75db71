package handlers

import "github.com/gin-gonic/gin"

// The mini-program client expects the cloudrun envelope: {"code":0,"data":…}
// on success, {"code":N,"message":…} on failure.

type Response struct {
	Code int         `json:"code"`
	Data interface{} `json:"data"`
}

type ErrorResponse struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"something went wrong"`
}

func ok(c *gin.Context, data interface{}) {
	c.JSON(200, Response{Code: 0, Data: data})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Code: status, Message: message})
}
