package middleware

import (
	"net/http"
	"strconv"
	"sync"

	"lodging-service/internal/handler/httperr"
	"lodging-service/internal/pkg/clock"
	"lodging-service/internal/pkg/config"
	"lodging-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limit exceeded")

// maxTrackedClients bounds the limiter map; it is reset when exceeded.
const maxTrackedClients = 10_000

// RateLimiter keeps one token bucket per client.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	clock    clock.Clock
}

func NewRateLimiter(cfg config.RateLimitConfig, clk clock.Clock) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(cfg.RequestsPerSecond),
		burst:    cfg.Burst,
		clock:    clk,
	}
}

// Limit must run after RequireAuth so clients are keyed by user id.
func (r *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.allow(clientKey(c)) {
			c.Header("Retry-After", "1")
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}

func (r *RateLimiter) allow(key string) bool {
	r.mu.Lock()
	limiter, ok := r.limiters[key]
	if !ok {
		if len(r.limiters) >= maxTrackedClients {
			r.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(r.limit, r.burst)
		r.limiters[key] = limiter
	}
	r.mu.Unlock()

	return limiter.AllowN(r.clock.Now(), 1)
}

func clientKey(c *gin.Context) string {
	if userID, ok := GetUserID(c); ok {
		return "user:" + strconv.FormatInt(int64(userID), 10)
	}
	return "ip:" + c.ClientIP()
}
