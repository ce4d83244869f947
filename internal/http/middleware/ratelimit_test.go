package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/meubelwerk/offerte-api/internal/config"
)

func newTestLimitedHandler(t *testing.T, cfg *config.RateLimitConfig) http.Handler {
	t.Helper()
	rl := NewRateLimiter(cfg, zap.NewNop())
	return rl.LimitByIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRateLimiter_SharesStateAcrossRequests(t *testing.T) {
	handler := newTestLimitedHandler(t, &config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 2,
	})

	for i, want := range []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, want, rec.Code, "request %d", i+1)
	}
}

func TestRateLimiter_WhitelistedPathBypassesLimit(t *testing.T) {
	handler := newTestLimitedHandler(t, &config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 1,
		WhitelistPaths:    []string{"/health"},
	})

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_DisabledPassesThrough(t *testing.T) {
	handler := newTestLimitedHandler(t, &config.RateLimitConfig{
		Enabled:           false,
		RequestsPerMinute: 1,
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
