package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/bookease/pkg/logger"
)

func buildRequestMessage(ctx *fiber.Ctx, duration time.Duration) string {
	var result strings.Builder

	result.WriteString(RequestIDFrom(ctx))
	result.WriteString(" - ")
	result.WriteString(ctx.IP())
	result.WriteString(" - ")
	result.WriteString(ctx.Method())
	result.WriteString(" ")
	result.WriteString(ctx.OriginalURL())
	result.WriteString(" - ")
	result.WriteString(strconv.Itoa(ctx.Response().StatusCode()))
	result.WriteString(" ")
	result.WriteString(strconv.Itoa(len(ctx.Response().Body())))
	result.WriteString(" - ")
	result.WriteString(strconv.FormatInt(duration.Milliseconds(), 10))
	result.WriteString("ms")

	return result.String()
}

// Logger writes one access line per request. Server errors are logged at error level.
func Logger(l logger.Interface) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()

		err := ctx.Next()

		msg := buildRequestMessage(ctx, time.Since(start))
		if ctx.Response().StatusCode() >= fiber.StatusInternalServerError {
			l.Error(msg)
		} else {
			l.Info(msg)
		}

		return err
	}
}
