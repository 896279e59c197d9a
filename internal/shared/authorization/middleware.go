package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitelog/internal/shared/constants"
)

// RequireAdmin aborts the request unless the authenticated user is an admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString(constants.ContextKeyUserRole))
		if !role.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"type": "forbidden", "message": "admin access required"},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireWrite aborts the request unless the authenticated user has the
// write or admin role.
func RequireWrite() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString(constants.ContextKeyUserRole))
		if !role.CanWrite() {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"type": "forbidden", "message": "write access required"},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
