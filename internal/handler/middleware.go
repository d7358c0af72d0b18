package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/acesite/backend/internal/ratelimit"
	"golang.org/x/time/rate"
)

// SecurityHeaders sets the standard hardening headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// Throttle is a coarse per-IP token-bucket throttle for the whole API. It
// smooths abusive bursts in front of the per-endpoint quota on the contact
// form, which stays authoritative for submission limits.
type Throttle struct {
	mu      sync.Mutex
	entries map[string]*throttleEntry
	rps     rate.Limit
	burst   int
	idleTTL time.Duration
}

type throttleEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewThrottle creates a Throttle allowing rps requests per second with the
// given burst per client address.
func NewThrottle(rps float64, burst int) *Throttle {
	return &Throttle{
		entries: make(map[string]*throttleEntry),
		rps:     rate.Limit(rps),
		burst:   burst,
		idleTTL: 15 * time.Minute,
	}
}

// Middleware rejects clients that exceed their bucket with 429.
func (t *Throttle) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !t.limiter(ratelimit.ClientAddress(r)).Allow() {
			writeJSON(w, http.StatusTooManyRequests, actionResponse{
				Success: false,
				Message: "Too many requests. Please slow down.",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (t *Throttle) limiter(addr string) *rate.Limiter {
	now := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	if ent, ok := t.entries[addr]; ok {
		ent.lastSeen = now
		return ent.lim
	}

	lim := rate.NewLimiter(t.rps, t.burst)
	t.entries[addr] = &throttleEntry{lim: lim, lastSeen: now}
	return lim
}

// sweep drops buckets idle longer than idleTTL.
func (t *Throttle) sweep() {
	cutoff := time.Now().Add(-t.idleTTL)

	t.mu.Lock()
	defer t.mu.Unlock()

	for addr, ent := range t.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(t.entries, addr)
		}
	}
}

// StartJanitor sweeps idle buckets every interval until ctx is done.
func (t *Throttle) StartJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				t.sweep()
			}
		}
	}()
}
