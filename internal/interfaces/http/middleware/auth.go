package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sitelog/internal/application/auth/usecases"
	"sitelog/internal/shared/constants"
	"sitelog/internal/shared/logger"
	"sitelog/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService usecases.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService usecases.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth validates the bearer token and stores the caller identity
// on the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		userID, role, err := m.jwtService.ValidateAccess(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyUserRole, role.String())

		c.Next()
	}
}
