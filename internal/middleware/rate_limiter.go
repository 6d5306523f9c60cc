package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/lennonhrmn/AWI-Mobile/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// windowLimiter counts requests per client IP over fixed windows. Expired
// windows are swept on the request path once per sweep interval.
type windowLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu        sync.Mutex
	counts    map[string]*windowCount
	lastSweep time.Time
}

type windowCount struct {
	n   int
	end time.Time
}

func newWindowLimiter(limit int, window time.Duration) *windowLimiter {
	return &windowLimiter{limit: limit, window: window, now: time.Now, counts: make(map[string]*windowCount)}
}

// allow records one request for key and reports whether it is within the limit.
func (l *windowLimiter) allow(key string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > 5*l.window {
		l.sweepLocked(now)
	}

	wc, ok := l.counts[key]
	if !ok || now.After(wc.end) {
		wc = &windowCount{end: now.Add(l.window)}
		l.counts[key] = wc
	}
	wc.n++
	return wc.n <= l.limit, wc.end
}

func (l *windowLimiter) sweepLocked(now time.Time) {
	purged := 0
	for key, wc := range l.counts {
		if now.After(wc.end) {
			delete(l.counts, key)
			purged++
		}
	}
	l.lastSweep = now
	if purged > 0 {
		log.Debug().Int("purged", purged).Int("remaining", len(l.counts)).Msg("rate limiter swept")
	}
}

func (l *windowLimiter) handler(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, end := l.allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", end.UTC().Format(http.TimeFormat))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(message))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newWindowLimiter(20, time.Minute).
		handler("Trop de tentatives de connexion. Réessayez dans une minute.")
}

// RateLimiter limits every client IP to limit requests per window.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newWindowLimiter(limit, window).
		handler("Trop de requêtes. Réessayez dans un instant.")
}
