package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Runs against a live Redis named by TEST_REDIS_ADDR, skipped otherwise.

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Fatalf("redis ping: %v", err)
	}
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestRateLimitHeadersAndExhaustion(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb := testRedis(t)

	// Unique bucket per run so reruns start from a clean window.
	bucket := "rl:test:" + uuid.NewString()
	keyFn := func(*gin.Context) string { return bucket }

	r := gin.New()
	r.GET("/limited", RateLimit(rdb, 2, time.Minute, keyFn, nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	serve := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	for i, wantRemaining := range []int{1, 0} {
		w := serve()
		if w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, w.Code)
		}
		if got := w.Header().Get("X-RateLimit-Remaining"); got != strconv.Itoa(wantRemaining) {
			t.Fatalf("request %d remaining = %q, want %d", i+1, got, wantRemaining)
		}
	}

	// Over the limit: 429 and the remaining count stays clamped at zero.
	for i := 0; i < 2; i++ {
		w := serve()
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("over-limit status = %d, want 429", w.Code)
		}
		if got := w.Header().Get("X-RateLimit-Remaining"); got != "0" {
			t.Fatalf("over-limit remaining = %q, want 0", got)
		}
	}
}
