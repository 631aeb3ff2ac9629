package webserver

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// keyedLimiter hands out one token bucket per client key.
type keyedLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func (k *keyedLimiter) allow(key string) bool {
	k.mu.Lock()
	limiter, ok := k.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(k.limit, k.burst)
		k.limiters[key] = limiter
	}
	k.mu.Unlock()

	return limiter.Allow()
}

// RateLimit bounds requests per client IP. A non-positive rate disables the
// limiter, which the tests rely on.
func RateLimit(perMinute, burst int) func(*fiber.Ctx) error {
	if perMinute <= 0 {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	limiter := &keyedLimiter{
		limiters: map[string]*rate.Limiter{},
		limit:    rate.Limit(float64(perMinute) / 60),
		burst:    burst,
	}

	return func(c *fiber.Ctx) error {
		if !limiter.allow(c.IP()) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too_many_requests"})
		}
		return c.Next()
	}
}
