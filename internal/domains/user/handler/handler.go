package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/bookease/internal/delivery/http/middleware"
	"github.com/savioruz/bookease/internal/delivery/http/response"
	"github.com/savioruz/bookease/internal/domains/user/service"
	"github.com/savioruz/bookease/pkg/logger"
)

type Handler struct {
	service service.UserService
	logger  logger.Interface
}

func New(s service.UserService, l logger.Interface) *Handler {
	return &Handler{
		service: s,
		logger:  l,
	}
}

const identifier = "http - user - %s"

func (h *Handler) RegisterRoutes(r fiber.Router) {
	users := r.Group("/users")

	users.Get("/profile", middleware.Jwt(), h.Profile)
}

// Profile godoc
// @Summary Get user profile
// @Description Get the profile of the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /users/profile [get]
// @Security BearerAuth
func (h *Handler) Profile(ctx *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(ctx)
	if err != nil {
		h.logger.Error(identifier, "profile - "+err.Error())

		return response.WithError(ctx, err)
	}

	data, err := h.service.Profile(ctx.UserContext(), identity.UserID)
	if err != nil {
		h.logger.Error(identifier, "profile - request_id: "+middleware.RequestIDFrom(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}
