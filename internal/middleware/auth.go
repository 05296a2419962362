package middleware

import (
	"fittrack_backend/internal/config"
	"fittrack_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards protected routes. A missing token is 401; a token
// that is present but malformed, expired, or of the wrong type is 403.
// The access token travels in the Authorization header only.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil || claims.TokenType != util.TokenTypeAccess {
			util.Forbidden(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}
