package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	pkgLog "task-dashboard/pkg/log"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := newRateLimiter(60) // 1/s, burst 6

	for i := 0; i < 6; i++ {
		if err := rl.Allow("10.0.0.1"); err != nil {
			t.Fatalf("request %d should pass within burst: %v", i, err)
		}
	}
	if err := rl.Allow("10.0.0.1"); err == nil {
		t.Error("expected the request after the burst to be limited")
	}
	if err := rl.Allow("10.0.0.2"); err != nil {
		t.Errorf("other clients should have their own bucket: %v", err)
	}
}

func TestRateLimiterNewClientBurst(t *testing.T) {
	rl := newRateLimiter(10) // burst 1, one token every 6s

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	start := make(chan struct{})
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if rl.Allow("10.0.0.9") == nil {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := allowed.Load(); got != 1 {
		t.Errorf("a new client should get exactly its burst of 1, got %d", got)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newEngine := func(cfg Config) *gin.Engine {
		mw := New(pkgLog.NewNop(), cfg)
		r := gin.New()
		r.POST("/tasks", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("Limited", func(t *testing.T) {
		r := newEngine(Config{RateLimitEnabled: true, RateLimitPerMin: 10}) // burst 1
		codes := make([]int, 0, 2)
		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/tasks", nil))
			codes = append(codes, w.Code)
		}
		if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
			t.Errorf("expected [200 429], got %v", codes)
		}
	})

	t.Run("Disabled", func(t *testing.T) {
		r := newEngine(Config{RateLimitEnabled: false, RateLimitPerMin: 1})
		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/tasks", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, w.Code)
			}
		}
	})
}
