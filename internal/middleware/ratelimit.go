package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/logger"
)

// RateLimiter throttles requests per client IP using a fixed window
// counter in Redis. When Redis is unreachable requests pass through; the
// limiter protects against abuse, it is not a correctness mechanism.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRateLimiter creates a rate limiter. A nil client or non-positive
// limit disables limiting entirely.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// Limit is the gin middleware enforcing the per-IP request budget
func (r *RateLimiter) Limit() gin.HandlerFunc {
	if r.client == nil || r.limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := "ratelimit:" + c.ClientIP()
		ctx := c.Request.Context()

		count, err := r.client.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn().Err(err).Msg("Rate limiter unavailable, request allowed")
			c.Next()
			return
		}
		if count == 1 {
			r.client.Expire(ctx, key, r.window)
		}

		if count > int64(r.limit) {
			rateLimitExceeded(c)
			return
		}

		c.Next()
	}
}

// rateLimitExceeded aborts the request with the throttling error code so
// clients can tell a 429 apart from input validation failures.
func rateLimitExceeded(c *gin.Context) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeRateLimited, "Too many requests").
		WithDetails("Request limit exceeded, try again later")
	c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(errorDetail))
}
