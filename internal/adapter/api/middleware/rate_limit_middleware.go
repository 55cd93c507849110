package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"carvendor/pkg/logger"
)

// RateLimiter is a simple per-IP token bucket. It fronts the public intake
// endpoints and the login endpoint, which are the ones worth abusing.
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	rate     int
	window   time.Duration
}

type visitor struct {
	tokens     int
	lastSeen   time.Time
	blockUntil time.Time
}

func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		window:   window,
	}

	go rl.cleanup()

	return rl
}

func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			if blocked, until := rl.take(ip); blocked {
				logger.Warn("Rate limit hit for %s", ip)
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Too many requests",
					"retry_after": int(time.Until(until).Seconds()),
				})
			}

			return next(c)
		}
	}
}

// take consumes one token for ip, refilling against elapsed time. Returns
// whether the request is blocked and until when.
func (rl *RateLimiter) take(ip string) (bool, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	v, ok := rl.visitors[ip]
	if !ok {
		rl.visitors[ip] = &visitor{tokens: rl.rate - 1, lastSeen: now}
		return false, time.Time{}
	}

	if now.Before(v.blockUntil) {
		return true, v.blockUntil
	}

	// lastSeen only advances by the refilled amount so that elapsed time
	// shorter than one token interval is banked, not discarded.
	refill := int(now.Sub(v.lastSeen) * time.Duration(rl.rate) / rl.window)
	if refill > 0 {
		v.tokens += refill
		if v.tokens >= rl.rate {
			v.tokens = rl.rate
			v.lastSeen = now
		} else {
			v.lastSeen = v.lastSeen.Add(time.Duration(refill) * rl.window / time.Duration(rl.rate))
		}
	}

	if v.tokens <= 0 {
		v.blockUntil = now.Add(rl.window)
		return true, v.blockUntil
	}

	v.tokens--
	return false, time.Time{}
}

func (rl *RateLimiter) cleanup() {
	for {
		time.Sleep(time.Hour)

		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastSeen) > 2*time.Hour {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
