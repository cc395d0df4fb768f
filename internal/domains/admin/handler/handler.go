package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/bookease/internal/delivery/http/middleware"
	"github.com/savioruz/bookease/internal/delivery/http/response"
	"github.com/savioruz/bookease/internal/domains/admin/service"
	"github.com/savioruz/bookease/pkg/constant"
	"github.com/savioruz/bookease/pkg/logger"
)

type Handler struct {
	service service.AdminService
	logger  logger.Interface
}

func New(s service.AdminService, l logger.Interface) *Handler {
	return &Handler{
		service: s,
		logger:  l,
	}
}

const identifier = "http - admin - %s"

func (h *Handler) RegisterRoutes(r fiber.Router) {
	admin := r.Group("/admin", middleware.Jwt(), middleware.AdminOnly())

	admin.Get("/bookings", h.ListBookings)
	admin.Delete("/bookings/:"+constant.RequestParamID, h.DeleteBooking)
}

// ListBookings godoc
// @Summary List all bookings
// @Description List every booking with the booking user's name and email, newest first
// @Tags admin
// @Produce json
// @Success 200 {array} dto.BookingResponse
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/bookings [get]
// @Security BearerAuth
func (h *Handler) ListBookings(ctx *fiber.Ctx) error {
	res, err := h.service.ListBookings(ctx.UserContext())
	if err != nil {
		h.logger.Error(identifier, "ListBookings - request_id: "+middleware.RequestIDFrom(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// DeleteBooking godoc
// @Summary Delete booking
// @Description Cancel a booking by id
// @Tags admin
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/bookings/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteBooking(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)

	if err := h.service.DeleteBooking(ctx.UserContext(), id); err != nil {
		h.logger.Error(identifier, "DeleteBooking - request_id: "+middleware.RequestIDFrom(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithNoContent(ctx)
}
