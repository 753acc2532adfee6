package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"news-backend/internal/shared"
	"news-backend/internal/shared/response"
	"news-backend/pkg/jwt"
)

// AuthMiddleware validates the bearer token and stores the caller's
// account id and role in the request context.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(shared.CtxAccountID, claims.AccountID)
		c.Set(shared.CtxRole, claims.Role)
		c.Set(shared.CtxEmail, claims.Email)

		c.Next()
	}
}

// OptionalAuth parses the token when present but never rejects the request.
// Public read endpoints use it so owners and admins can see their drafts.
func OptionalAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		if claims, err := manager.ValidateAccessToken(parts[1]); err == nil {
			c.Set(shared.CtxAccountID, claims.AccountID)
			c.Set(shared.CtxRole, claims.Role)
			c.Set(shared.CtxEmail, claims.Email)
		}

		c.Next()
	}
}

// CallerID returns the authenticated account id, or 0 when anonymous
func CallerID(c *gin.Context) int16 {
	if v, exists := c.Get(shared.CtxAccountID); exists {
		if id, ok := v.(int16); ok {
			return id
		}
	}
	return 0
}

// CallerRole returns the authenticated role, or 0 when anonymous
func CallerRole(c *gin.Context) int {
	if v, exists := c.Get(shared.CtxRole); exists {
		if role, ok := v.(int); ok {
			return role
		}
	}
	return 0
}
