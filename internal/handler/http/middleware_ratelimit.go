package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"golang.org/x/time/rate"
)

const (
	defaultLimiterIdleTTL      = 10 * time.Minute
	defaultLimiterCleanupEvery = time.Minute
)

// ClientLimiters keeps one token bucket per client address.
// Buckets unused for longer than the idle TTL are dropped by Cleanup.
type ClientLimiters struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry

	rps     rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewClientLimiters returns limiters allowing rps requests per second with the
// given burst for every client. A burst below 1 is raised to 1.
func NewClientLimiters(rps float64, burst int) *ClientLimiters {
	burst = max(burst, 1)

	return &ClientLimiters{
		entries: make(map[string]*limiterEntry),
		rps:     rate.Limit(rps),
		burst:   burst,
		idleTTL: defaultLimiterIdleTTL,
		now:     time.Now,
	}
}

// CleanupEvery is the interval at which Cleanup is expected to run.
func (c *ClientLimiters) CleanupEvery() time.Duration {
	return defaultLimiterCleanupEvery
}

// Reserve takes one token for key. It returns zero when the request may
// proceed, otherwise how long the client should wait.
func (c *ClientLimiters) Reserve(key string) time.Duration {
	now := c.now()

	c.mu.Lock()
	ent, ok := c.entries[key]
	if !ok {
		ent = &limiterEntry{lim: rate.NewLimiter(c.rps, c.burst)}
		c.entries[key] = ent
	}
	ent.lastSeen = now
	lim := ent.lim
	c.mu.Unlock()

	res := lim.ReserveN(now, 1)
	if !res.OK() {
		return time.Second
	}

	delay := res.DelayFrom(now)
	if delay > 0 {
		res.CancelAt(now)
	}
	return delay
}

// Cleanup drops idle buckets and reports how many were removed.
func (c *ClientLimiters) Cleanup() int {
	cutoff := c.now().Add(-c.idleTTL)

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for k, ent := range c.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked clients.
func (c *ClientLimiters) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// withRateLimit rejects requests over the client's budget with 429 and a
// Retry-After header in whole seconds.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)

		if delay := h.limiters.Reserve(key); delay > 0 {
			retryAfter := int(math.Ceil(delay.Seconds()))
			logger.FromRequest(r).Warn().
				Str("client", key).
				Int("retry_after", retryAfter).
				Msg("rate limit exceeded")

			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			_ = writeError(w, http.StatusTooManyRequests, msgTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
