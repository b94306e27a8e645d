package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware applies a fixed-window per-caller limit backed by
// redis. Anonymous callers are keyed by client IP.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil {
			c.Next()
			return
		}

		key := c.ClientIP()
		if userID, exists := c.Get("user_id"); exists {
			key = fmt.Sprintf("%v", userID)
		}
		redisKey := fmt.Sprintf("rate_limit:%s", key)

		ctx := c.Request.Context()
		count, err := redisClient.Incr(ctx, redisKey).Result()
		if err != nil {
			// Redis being down should not take the API with it
			c.Next()
			return
		}

		if count == 1 {
			redisClient.Expire(ctx, redisKey, window)
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded, try again later"})
			return
		}

		c.Next()
	}
}
