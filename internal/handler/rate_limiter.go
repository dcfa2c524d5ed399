package handler

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimiter enforces a per-IP sliding-window request limit. It is applied
// to the contact endpoint only; read endpoints stay unlimited.
type RateLimiter struct {
	maxPerMinute      int
	trustedProxyCount int

	mu      sync.Mutex
	windows map[string][]time.Time
}

// NewRateLimiter creates a limiter allowing maxPerMinute requests per client
// IP. A single trusted reverse proxy is assumed for X-Forwarded-For parsing.
func NewRateLimiter(maxPerMinute int) *RateLimiter {
	rl := &RateLimiter{
		maxPerMinute:      maxPerMinute,
		trustedProxyCount: 1,
		windows:           make(map[string][]time.Time),
	}
	go rl.cleanupLoop()
	return rl
}

// cleanupLoop drops stale client entries so the map does not grow unbounded.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-time.Minute)
		rl.mu.Lock()
		for ip, stamps := range rl.windows {
			kept := pruneBefore(stamps, cutoff)
			if len(kept) == 0 {
				delete(rl.windows, ip)
			} else {
				rl.windows[ip] = kept
			}
		}
		rl.mu.Unlock()
	}
}

// pruneBefore filters timestamps in place, keeping only those after cutoff.
func pruneBefore(stamps []time.Time, cutoff time.Time) []time.Time {
	kept := stamps[:0]
	for _, ts := range stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	return kept
}

// Middleware wraps next with the rate limit check. Rejections get a 429 with
// a Retry-After header.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := rl.clientIP(r)
		now := time.Now()

		rl.mu.Lock()
		stamps := pruneBefore(rl.windows[ip], now.Add(-time.Minute))
		if len(stamps) >= rl.maxPerMinute {
			oldest := stamps[0]
			rl.windows[ip] = stamps
			rl.mu.Unlock()

			w.Header().Set("Retry-After", retryAfterSeconds(oldest.Add(time.Minute).Sub(now)))
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded", nil)
			return
		}
		rl.windows[ip] = append(stamps, now)
		rl.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func retryAfterSeconds(d time.Duration) string {
	secs := int(d.Seconds()) + 1
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// clientIP reads the client address from the rightmost trusted position of
// X-Forwarded-For to avoid spoofing, falling back to RemoteAddr.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && rl.trustedProxyCount > 0 {
		parts := strings.Split(xff, ",")
		idx := len(parts) - rl.trustedProxyCount
		if idx >= 0 && idx < len(parts) {
			return strings.TrimSpace(parts[idx])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
