package httpadapter

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter tracks per-IP token buckets. A background goroutine evicts
// entries not seen for ten minutes.
type RateLimiter struct {
	visitors sync.Map
	rate     rate.Limit
	burst    int
	done     chan struct{}
}

// NewRateLimiter creates a limiter allowing r requests per second with the
// given burst and starts its eviction loop.
func NewRateLimiter(r rate.Limit, burst int) *RateLimiter {
	rl := &RateLimiter{rate: r, burst: burst, done: make(chan struct{})}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	if v, ok := rl.visitors.Load(ip); ok {
		vis := v.(*visitor)
		vis.lastSeen = time.Now()
		return vis.limiter
	}
	limiter := rate.NewLimiter(rl.rate, rl.burst)
	rl.visitors.Store(ip, &visitor{limiter: limiter, lastSeen: time.Now()})
	return limiter
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.visitors.Range(func(key, value any) bool {
				if time.Since(value.(*visitor).lastSeen) > 10*time.Minute {
					rl.visitors.Delete(key)
				}
				return true
			})
		case <-rl.done:
			return
		}
	}
}

// Stop terminates the eviction goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.done)
}

// Middleware rate-limits by client IP, honouring X-Real-Ip when set.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if fwd := r.Header.Get("X-Real-Ip"); fwd != "" {
			ip = fwd
		}
		if !rl.limiterFor(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
