package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/P3chys/catalogo-disciplinas/internal/render"
)

// RateLimiter provides rate limiting functionality using Redis
type RateLimiter struct {
	redis *redis.Client
}

// NewRateLimiter creates a new rate limiter instance
func NewRateLimiter(redisURL string) (*RateLimiter, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RateLimiter{redis: client}, nil
}

// RateLimitByIP limits requests per client IP to maxRequests per window.
// Routes sharing a scope share one counter. A nil limiter lets every request
// through.
func (rl *RateLimiter) RateLimitByIP(scope string, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || maxRequests <= 0 {
			c.Next()
			return
		}

		key := rateLimitKey(scope, c.ClientIP())
		ctx := c.Request.Context()

		// The expiry is set in the same transaction as the increment so a
		// counter can never outlive its window.
		pipe := rl.redis.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		if _, err := pipe.Exec(ctx); err != nil {
			// If Redis fails, allow the request but log the error
			_ = c.Error(fmt.Errorf("rate limiter error: %w", err))
			c.Next()
			return
		}
		count := incr.Val()

		if count > int64(maxRequests) {
			ttl, _ := rl.redis.TTL(ctx, key).Result()

			c.Header("Retry-After", fmt.Sprintf("%d", int(ttl.Seconds())))
			c.HTML(http.StatusTooManyRequests, render.PageTooMany, render.ErrorPage{
				CurrentTime: time.Now().UTC(),
				Path:        c.Request.URL.Path,
				RequestID:   GetRequestID(c),
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", maxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", maxRequests-int(count)))

		c.Next()
	}
}

func rateLimitKey(scope, ip string) string {
	return fmt.Sprintf("rate_limit:ip:%s:%s", scope, ip)
}

// Ping reports whether Redis is reachable.
func (rl *RateLimiter) Ping(ctx context.Context) error {
	if rl == nil {
		return fmt.Errorf("rate limiter disabled")
	}
	return rl.redis.Ping(ctx).Err()
}

// Close closes the Redis connection
func (rl *RateLimiter) Close() error {
	if rl == nil {
		return nil
	}
	return rl.redis.Close()
}
