package httpmiddleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Limiter decides whether a client identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// RateLimit returns a gin handler enforcing per-IP limits through the
// given Limiter.
func RateLimit(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		if !l.Allow(c.Request.Context(), ip) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit"})
			return
		}
		c.Next()
	}
}

// RedisRateLimit counts requests per client in fixed one-minute
// windows, sharing state across api instances through Redis. Keys look
// like edutrack:ratelimit:<ip>:<window> and expire on their own.
type RedisRateLimit struct {
	client    *redis.Client
	perMinute int
	prefix    string
}

// NewRedisRateLimit creates a limiter allowing perMinute requests per
// client per window.
func NewRedisRateLimit(client *redis.Client, perMinute int) *RedisRateLimit {
	return &RedisRateLimit{client: client, perMinute: perMinute, prefix: "edutrack:ratelimit"}
}

// Allow increments the client's window counter. Redis being down fails
// open.
func (l *RedisRateLimit) Allow(ctx context.Context, key string) bool {
	window := windowKey(l.prefix, key, time.Now())
	n, err := l.client.Incr(ctx, window).Result()
	if err != nil {
		return true
	}
	if n == 1 {
		l.client.Expire(ctx, window, 2*time.Minute)
	}
	return n <= int64(l.perMinute)
}

func windowKey(prefix, key string, now time.Time) string {
	return fmt.Sprintf("%s:%s:%d", prefix, key, now.Unix()/60)
}

// MemoryRateLimit is the single-process fallback used when the redis
// backend is not configured (QUEUE_BACKEND=memory deployments, tests).
type MemoryRateLimit struct {
	perMinute int
	mu        sync.Mutex
	windows   map[string]*window
}

type window struct {
	count   int
	started time.Time
}

// NewMemoryRateLimit creates an in-process limiter with the same
// fixed-window semantics as the Redis one.
func NewMemoryRateLimit(perMinute int) *MemoryRateLimit {
	return &MemoryRateLimit{
		perMinute: perMinute,
		windows:   make(map[string]*window),
	}
}

// Allow counts the request against the client's current window.
func (l *MemoryRateLimit) Allow(_ context.Context, key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	w, ok := l.windows[key]
	if !ok || now.Sub(w.started) >= time.Minute {
		l.windows[key] = &window{count: 1, started: now}
		return true
	}
	w.count++
	return w.count <= l.perMinute
}
