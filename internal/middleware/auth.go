package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/xyzhou0323/weapp-xyz-service/internal/services"
)

type sessionBody struct {
	Session string `json:"session"`
}

// SessionAuth validates the caller's thirdSession token and attaches the
// resolved identity to the context. The token comes from the Authorization
// header ("Bearer <token>") or, for clients that cannot set headers, from a
// "session" field in the JSON body. Body reads go through ShouldBindBodyWith
// so downstream handlers can still bind the cached body.
func SessionAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			var body sessionBody
			if err := c.ShouldBindBodyWith(&body, binding.JSON); err == nil {
				token = body.Session
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 401, "message": "session token required"})
			return
		}

		identity, err := authService.Authenticate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 401, "message": "session expired or invalid"})
			return
		}

		c.Set("user_id", identity.UserID)
		c.Set("openid", identity.Openid)
		c.Set("session_key", identity.SessionKey)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
