package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DatabasePinger is satisfied by *sql.DB.
type DatabasePinger interface {
	PingContext(ctx context.Context) error
}

// CachePinger is satisfied by *middleware.RateLimiter.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck reports database reachability. The rate limit backend is
// optional and never makes the service unhealthy.
func HealthCheck(db DatabasePinger, cache CachePinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		rateLimit := "ok"
		if cache == nil || cache.Ping(ctx) != nil {
			rateLimit = "unavailable"
		}

		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "unhealthy",
				"database":   "disconnected",
				"rate_limit": rateLimit,
			})
			return
		}

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "unhealthy",
				"database":   "unreachable",
				"rate_limit": rateLimit,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"database":   "ok",
			"rate_limit": rateLimit,
		})
	}
}
