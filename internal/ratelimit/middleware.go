package ratelimit

import (
	"log/slog"
	"strconv"

	apperrors "github.com/ZanzyTHEbar/ies-diagnostics/internal/errors"
	"github.com/gin-gonic/gin"
)

// IPRateLimitMiddleware enforces the per-minute limit per client IP. Blocked
// requests are aborted with a rate_limit AppError for the error handler to render.
func (rl *RateLimiter) IPRateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		result, err := rl.AllowIP(c.Request.Context(), ip)
		if err != nil {
			// a failing limiter never blocks traffic
			slog.Error("Rate limit check failed", "ip", ip, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			rl.metrics.IncRateLimitBlock(result.Backend)

			retryAfter := int(result.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			_ = c.Error(apperrors.NewRateLimitError(result.RetryAfter.String()))
			c.Abort()
			return
		}

		c.Next()
	}
}
