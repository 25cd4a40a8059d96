package mw

import (
	"net/http"
	"sync"
	"time"

	"github.com/MrSnakeDoc/foyer/internal/utils"
)

// RateLimitConfig tunes the per-IP token bucket protecting mutating
// endpoints from a misbehaving frontend loop.
type RateLimitConfig struct {
	Burst           int           // bucket capacity
	RefillPerMinute int           // tokens restored per IP per minute
	SweepInterval   time.Duration // how often idle buckets are evicted
	IdleTTL         time.Duration // bucket lifetime without traffic
	TrustProxy      bool          // resolve IP from proxy headers when true
}

type bucket struct {
	tokens   float64
	lastRef  time.Time
	lastSeen time.Time
}

type limiter struct {
	cfg       RateLimitConfig
	rate      float64 // tokens per second
	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

// RateLimit returns a middleware enforcing cfg per client IP.
func RateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	l := &limiter{
		cfg:       cfg,
		rate:      float64(cfg.RefillPerMinute) / 60.0,
		buckets:   make(map[string]*bucket),
		lastSweep: time.Now(),
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := utils.ClientIP(r, cfg.TrustProxy)
			if !l.take(ip, time.Now()) {
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// take consumes one token for ip, refilling and sweeping as needed.
func (l *limiter) take(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.cfg.SweepInterval {
		for key, b := range l.buckets {
			if now.Sub(b.lastSeen) > l.cfg.IdleTTL {
				delete(l.buckets, key)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.buckets[ip]
	if !ok {
		b = &bucket{tokens: float64(l.cfg.Burst), lastRef: now}
		l.buckets[ip] = b
	}

	elapsed := now.Sub(b.lastRef).Seconds()
	b.tokens += elapsed * l.rate
	if b.tokens > float64(l.cfg.Burst) {
		b.tokens = float64(l.cfg.Burst)
	}
	b.lastRef = now
	b.lastSeen = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}
