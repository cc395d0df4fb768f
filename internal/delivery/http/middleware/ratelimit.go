package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/bookease/internal/delivery/http/response"
	"github.com/savioruz/bookease/pkg/failure"
	"github.com/savioruz/bookease/pkg/logger"
	"github.com/savioruz/bookease/pkg/ratelimit"
)

// RateLimit rejects callers whose IP has exhausted its bucket in store.
func RateLimit(store *ratelimit.Store, l logger.Interface) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.IP()
		if !store.Allow(ip) {
			l.Warn("http - middleware - rate limit exceeded for %s", ip)

			return response.WithError(c, failure.TooManyRequests("Rate limit exceeded. Try again later."))
		}

		return c.Next()
	}
}
