package middleware

import (
	"github.com/gin-gonic/gin"

	"news-backend/internal/shared"
	"news-backend/internal/shared/response"
)

// RequireAdmin allows only administrator accounts
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CallerRole(c) != shared.RoleAdmin {
			response.Forbidden(c, "admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireStaff allows staff and admin accounts.
// Per-article ownership is checked in the article service, not here.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CallerRole(c)
		if role != shared.RoleStaff && role != shared.RoleAdmin {
			response.Forbidden(c, "staff role required")
			c.Abort()
			return
		}
		c.Next()
	}
}
