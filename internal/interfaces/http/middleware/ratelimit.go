package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitelog/internal/infrastructure/ratelimit"
	"sitelog/internal/shared/logger"
	"sitelog/internal/shared/utils"
)

// LoginRateLimit throttles authentication attempts per client IP. When
// the limiter backend is unreachable the request is allowed through so
// an outage never locks everyone out.
func LoginRateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.Config, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow("login:"+c.ClientIP(), cfg)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many login attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
