package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/bookease/internal/delivery/http/middleware"
	"github.com/savioruz/bookease/internal/delivery/http/response"
	"github.com/savioruz/bookease/internal/domains/bookings/dto"
	"github.com/savioruz/bookease/internal/domains/bookings/service"
	"github.com/savioruz/bookease/pkg/constant"
	"github.com/savioruz/bookease/pkg/failure"
	"github.com/savioruz/bookease/pkg/logger"
)

type Handler struct {
	service   service.BookingService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.BookingService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - bookings - %s"

	routepath = "/bookings"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	bookings := r.Group(routepath)

	bookings.Get("/slots/:"+constant.RequestParamDate, h.GetBookedSlots)
	bookings.Get("/user", middleware.Jwt(), h.GetUserBookings)
	bookings.Post("/", middleware.Jwt(), h.CreateBooking)
}

// GetBookedSlots godoc
// @Summary Get booked slots
// @Description Get the time labels already booked on a date
// @Tags bookings
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.BookedSlotsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/slots/{date} [get]
func (h *Handler) GetBookedSlots(ctx *fiber.Ctx) error {
	req := dto.GetBookedSlotsRequest{Date: ctx.Params(constant.RequestParamDate)}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, "GetBookedSlots - validation error: "+err.Error())

		return response.WithError(ctx, failure.BadRequestFromString("Invalid date format"))
	}

	res, err := h.service.GetBookedSlots(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error(identifier, "GetBookedSlots - request_id: "+middleware.RequestIDFrom(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// CreateBooking godoc
// @Summary Create booking
// @Description Book a time slot for the authenticated user
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Booking request"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings [post]
// @Security BearerAuth
func (h *Handler) CreateBooking(ctx *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(ctx)
	if err != nil {
		h.logger.Error(identifier, "CreateBooking - "+err.Error())

		return response.WithError(ctx, err)
	}

	var req dto.CreateBookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "CreateBooking - body parser error: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, "CreateBooking - validation error: "+err.Error())

		return response.WithError(ctx, failure.BadRequestFromString("Date and time are required"))
	}

	res, err := h.service.CreateBooking(ctx.UserContext(), req, identity.UserID, identity.Email, identity.Name)
	if err != nil {
		h.logger.Error(identifier, "CreateBooking - request_id: "+middleware.RequestIDFrom(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, res)
}

// GetUserBookings godoc
// @Summary Get user bookings
// @Description Get bookings of the authenticated user
// @Tags bookings
// @Produce json
// @Success 200 {array} dto.BookingResponse
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/user [get]
// @Security BearerAuth
func (h *Handler) GetUserBookings(ctx *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(ctx)
	if err != nil {
		h.logger.Error(identifier, "GetUserBookings - "+err.Error())

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetUserBookings(ctx.UserContext(), identity.UserID)
	if err != nil {
		h.logger.Error(identifier, "GetUserBookings - request_id: "+middleware.RequestIDFrom(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}
