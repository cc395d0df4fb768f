package response

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/bookease/pkg/failure"
)

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

// WithJSON writes payload as the response body without an envelope.
func WithJSON(ctx *fiber.Ctx, code int, payload interface{}) error {
	return response(ctx, code, payload)
}

func WithMessage(ctx *fiber.Ctx, code int, message string) error {
	return response(ctx, code, Message{Message: message})
}

func WithNoContent(ctx *fiber.Ctx) error {
	return ctx.SendStatus(fiber.StatusNoContent)
}

func WithError(ctx *fiber.Ctx, err error) error {
	code := failure.GetCode(err)
	errMsg := err.Error()

	return response(ctx, code, Error{Error: &errMsg})
}

func response(ctx *fiber.Ctx, code int, payload interface{}) error {
	if payload == nil {
		return ctx.SendStatus(code)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)

	return ctx.Status(code).JSON(payload)
}
