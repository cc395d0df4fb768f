package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/savioruz/bookease/pkg/constant"
)

const localRequestID = "request_id"

func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(constant.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(constant.HeaderRequestID, requestID)
		c.Locals(localRequestID, requestID)

		return c.Next()
	}
}

// RequestIDFrom returns the id assigned by RequestID, or "unknown".
func RequestIDFrom(c *fiber.Ctx) string {
	if id, ok := c.Locals(localRequestID).(string); ok {
		return id
	}

	return "unknown"
}
