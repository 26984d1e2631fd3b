package http

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientLimiters_Reserve(t *testing.T) {
	lim := NewClientLimiters(1, 2)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	lim.now = func() time.Time { return now }

	assert.Zero(t, lim.Reserve("10.0.0.1"))
	assert.Zero(t, lim.Reserve("10.0.0.1"))

	delay := lim.Reserve("10.0.0.1")
	assert.Greater(t, delay, time.Duration(0))
	assert.LessOrEqual(t, delay, time.Second)

	// other clients have their own bucket
	assert.Zero(t, lim.Reserve("10.0.0.2"))

	// a rejected request does not consume a token
	now = now.Add(time.Second)
	assert.Zero(t, lim.Reserve("10.0.0.1"))
}

func TestClientLimiters_Cleanup(t *testing.T) {
	lim := NewClientLimiters(10, 10)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	lim.now = func() time.Time { return now }

	lim.Reserve("idle")
	now = now.Add(defaultLimiterIdleTTL / 2)
	lim.Reserve("active")
	require.Equal(t, 2, lim.Len())

	now = now.Add(defaultLimiterIdleTTL/2 + time.Second)
	assert.Equal(t, 1, lim.Cleanup())
	assert.Equal(t, 1, lim.Len())

	now = now.Add(defaultLimiterIdleTTL)
	assert.Equal(t, 1, lim.Cleanup())
	assert.Equal(t, 0, lim.Len())
}

func TestClientLimiters_CleanupEvery(t *testing.T) {
	assert.Equal(t, defaultLimiterCleanupEvery, NewClientLimiters(1, 1).CleanupEvery())
}

func TestClientKey(t *testing.T) {
	tests := []struct {
		remoteAddr string
		want       string
	}{
		{"192.0.2.1:1234", "192.0.2.1"},
		{"[2001:db8::1]:80", "2001:db8::1"},
		{"192.0.2.1", "192.0.2.1"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.remoteAddr, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			assert.Equal(t, tt.want, clientKey(req))
		})
	}
}

func TestWithRateLimit_ViaRouter(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{RateLimitRPS: 0.001, RateLimitBurst: 1}, logger.Nop())
	router := h.Init()

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, msgTooManyRequests, decodeError(t, second))
	assert.NotEmpty(t, second.Header().Get(traceIDHeader))

	retryAfter, err := strconv.Atoi(second.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.Greater(t, retryAfter, 0)
}
