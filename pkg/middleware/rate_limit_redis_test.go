package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newRedisLimitedRouter(t *testing.T, rps float64, burst int, window time.Duration) (*gin.Engine, *mr.Miniredis) {
	t.Helper()
	m, err := mr.Run()
	require.NoError(t, err)
	t.Cleanup(m.Close)

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	r := gin.New()
	r.Use(RedisRateLimitMiddleware(client, rps, burst, window))
	r.GET("/r", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	return r, m
}

func limitedGet(r *gin.Engine, token string) int {
	rq := httptest.NewRequest("GET", "/r", nil)
	if token != "" {
		rq.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, rq)
	return w.Code
}

func TestRedisRateLimitMiddleware_PerTokenWindow(t *testing.T) {
	// wide window so consecutive requests cannot straddle a bucket boundary
	r, _ := newRedisLimitedRouter(t, 0.1, 0, 10*time.Second) // 1 req per window, no burst

	// first request for token-a fills its window
	require.Equal(t, http.StatusOK, limitedGet(r, "token-a"))
	require.Equal(t, http.StatusTooManyRequests, limitedGet(r, "token-a"))

	// a different bearer token counts against its own window
	require.Equal(t, http.StatusOK, limitedGet(r, "token-b"))

	// anonymous traffic is keyed by client IP, independent of both tokens
	require.Equal(t, http.StatusOK, limitedGet(r, ""))
	require.Equal(t, http.StatusTooManyRequests, limitedGet(r, ""))
}

func TestRedisRateLimitMiddleware_WindowExpires(t *testing.T) {
	r, m := newRedisLimitedRouter(t, 0.1, 0, 10*time.Second)

	require.Equal(t, http.StatusOK, limitedGet(r, "token-w"))
	require.Equal(t, http.StatusTooManyRequests, limitedGet(r, "token-w"))

	// advance miniredis past the window key's TTL and the token is allowed again
	m.FastForward(12 * time.Second)
	require.Equal(t, http.StatusOK, limitedGet(r, "token-w"))
}

func TestRedisRateLimitMiddleware_NilClientFallsBack(t *testing.T) {
	// without a Redis client the middleware degrades to the in-memory limiter
	r := gin.New()
	r.Use(RedisRateLimitMiddleware(nil, 0.5, 1, 1*time.Second))
	r.GET("/r", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	require.Equal(t, http.StatusOK, limitedGet(r, "fallback-tok"))
	require.Equal(t, http.StatusTooManyRequests, limitedGet(r, "fallback-tok"))
}
