package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/bookease/internal/delivery/http/middleware"
	"github.com/savioruz/bookease/internal/delivery/http/response"
	"github.com/savioruz/bookease/internal/domains/auth/service"
	"github.com/savioruz/bookease/internal/domains/user/dto"
	"github.com/savioruz/bookease/pkg/failure"
	"github.com/savioruz/bookease/pkg/logger"
)

type Handler struct {
	service   service.AuthService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.AuthService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const identifier = "http - auth - %s"

func (h *Handler) RegisterRoutes(r fiber.Router) {
	auth := r.Group("/auth")

	auth.Post("/signup", h.Signup)
	auth.Post("/login", h.Login)
}

// Signup godoc
// @Summary Register new user
// @Description Register new user with name, email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.UserSignupRequest true "User signup request"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /auth/signup [post]
func (h *Handler) Signup(ctx *fiber.Ctx) error {
	var req dto.UserSignupRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "signup - body parsing error: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, "signup - validate error: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Signup(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error(identifier, "signup - request_id: "+middleware.RequestIDFrom(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// Login godoc
// @Summary Login user
// @Description Login user with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.UserLoginRequest true "User login request"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /auth/login [post]
func (h *Handler) Login(ctx *fiber.Ctx) error {
	var req dto.UserLoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "login - body parsing error: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, "login - validate error: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Login(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error(identifier, "login - request_id: "+middleware.RequestIDFrom(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}
