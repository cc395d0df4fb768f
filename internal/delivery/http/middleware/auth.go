package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/bookease/internal/delivery/http/response"
	"github.com/savioruz/bookease/pkg/constant"
	"github.com/savioruz/bookease/pkg/failure"
	"github.com/savioruz/bookease/pkg/jwt"
)

const localName = "name"

func Jwt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(constant.HeaderAuthorization)
		if authHeader == "" {
			err := failure.Unauthorized("missing authorization header")

			return response.WithError(c, err)
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != constant.BearerPrefix || parts[1] == "" {
			err := failure.Unauthorized("invalid authorization header format")

			return response.WithError(c, err)
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			err := failure.Unauthorized("invalid token")

			return response.WithError(c, err)
		}

		c.Locals(constant.JwtFieldUser, claims.ID)
		c.Locals(constant.JwtFieldEmail, claims.Email)
		c.Locals(constant.JwtFieldLevel, claims.Level)
		c.Locals(localName, claims.Name)

		return c.Next()
	}
}

// Identity is the authenticated caller as stored by Jwt.
type Identity struct {
	UserID string
	Email  string
	Name   string
	Level  string
}

// CurrentIdentity reads the caller placed in the context by Jwt.
func CurrentIdentity(c *fiber.Ctx) (Identity, error) {
	userID, ok := c.Locals(constant.JwtFieldUser).(string)
	if !ok || userID == "" {
		return Identity{}, failure.Unauthorized(constant.ErrInvalidContextUserType.Error())
	}

	email, _ := c.Locals(constant.JwtFieldEmail).(string)
	name, _ := c.Locals(localName).(string)
	level, _ := c.Locals(constant.JwtFieldLevel).(string)

	return Identity{
		UserID: userID,
		Email:  email,
		Name:   name,
		Level:  level,
	}, nil
}
