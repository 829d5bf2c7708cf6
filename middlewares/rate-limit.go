package middlewares

import (
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/caprice1026-disc/aws-parody-page/configs"
	"github.com/caprice1026-disc/aws-parody-page/utils"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware throttles generation requests per client IP with a
// token bucket. Idle clients are evicted so the map does not grow unbounded.
type RateLimitMiddleware struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	perMinute int
}

func NewRateLimitMiddleware(perMinute int) *RateLimitMiddleware {
	if perMinute <= 0 {
		perMinute = configs.DEFAULT_RATE_LIMIT_PER_MINUTE
	}

	m := &RateLimitMiddleware{
		clients:   make(map[string]*clientLimiter),
		limit:     rate.Limit(float64(perMinute) / 60.0),
		burst:     configs.RATE_LIMIT_BURST,
		perMinute: perMinute,
	}
	go m.evictIdle()
	return m
}

func (m *RateLimitMiddleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := m.limiterFor(utils.GetTrueClientIP(c))

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", m.perMinute))

		if !limiter.Allow() {
			retryAfter := int(math.Ceil(60.0 / float64(m.perMinute)))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":      "rate_limit_exceeded",
				"message":    "Request limit exceeded. Try again shortly.",
				"retryAfter": retryAfter,
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", int(limiter.Tokens())))
		c.Next()
	}
}

func (m *RateLimitMiddleware) limiterFor(clientIP string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	client, exists := m.clients[clientIP]
	if !exists {
		client = &clientLimiter{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.clients[clientIP] = client
	}
	client.lastSeen = time.Now()
	return client.limiter
}

func (m *RateLimitMiddleware) evictIdle() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		m.mu.Lock()
		for ip, client := range m.clients {
			if time.Since(client.lastSeen) > configs.RATE_LIMIT_IDLE_EVICTION {
				delete(m.clients, ip)
			}
		}
		m.mu.Unlock()
	}
}
