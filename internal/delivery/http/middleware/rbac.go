package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/bookease/internal/delivery/http/response"
	"github.com/savioruz/bookease/pkg/constant"
	"github.com/savioruz/bookease/pkg/failure"
)

func CheckRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(constant.JwtFieldLevel).(string)
		if !ok {
			err := failure.Unauthorized("role information not found")

			return response.WithError(c, err)
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				return c.Next()
			}
		}

		err := failure.Forbidden("Admin access required")

		return response.WithError(c, err)
	}
}

// AdminOnly must run after Jwt.
func AdminOnly() fiber.Handler {
	return CheckRole(constant.UserRoleAdmin)
}
