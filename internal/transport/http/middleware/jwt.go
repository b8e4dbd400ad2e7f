package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"dermaglow/internal/model"
	"dermaglow/internal/pkg/jwtutil"
	"dermaglow/internal/transport/http/response"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
	ContextRoleKey     = "role"
)

func AuthJWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			response.Error(c, 401, response.CodeUnauthorized, "missing authorization header")
			c.Abort()
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(authHeader, prefix) {
			response.Error(c, 401, response.CodeUnauthorized, "invalid authorization scheme")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
		claims, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			response.Error(c, 401, response.CodeUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// AdminOnly gates clinic mutations. Must run after AuthJWT.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleAny, exists := c.Get(ContextRoleKey)
		role, ok := roleAny.(string)
		if !exists || !ok || role != model.RoleAdmin {
			response.Error(c, 403, response.CodeForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
