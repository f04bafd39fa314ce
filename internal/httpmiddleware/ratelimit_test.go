package httpmiddleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(NewMemoryRateLimit(3)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code, "request %d within limit", i+1)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestMemoryRateLimitTracksPerKey(t *testing.T) {
	l := NewMemoryRateLimit(1)
	ctx := context.Background()

	assert.True(t, l.Allow(ctx, "1.2.3.4"))
	assert.False(t, l.Allow(ctx, "1.2.3.4"))
	assert.True(t, l.Allow(ctx, "5.6.7.8"), "a different client has its own window")
}

func TestWindowKey(t *testing.T) {
	now := time.Unix(120, 0)
	key := windowKey("edutrack:ratelimit", "1.2.3.4", now)
	assert.Equal(t, "edutrack:ratelimit:1.2.3.4:2", key)

	// Same window for the whole minute, next window after it.
	assert.Equal(t, key, windowKey("edutrack:ratelimit", "1.2.3.4", time.Unix(179, 0)))
	assert.NotEqual(t, key, windowKey("edutrack:ratelimit", "1.2.3.4", time.Unix(180, 0)))
}
