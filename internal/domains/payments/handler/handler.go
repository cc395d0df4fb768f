package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/bookease/config"
	"github.com/savioruz/bookease/internal/delivery/http/middleware"
	"github.com/savioruz/bookease/internal/delivery/http/response"
	"github.com/savioruz/bookease/internal/domains/payments/dto"
	"github.com/savioruz/bookease/internal/domains/payments/service"
	"github.com/savioruz/bookease/pkg/constant"
	"github.com/savioruz/bookease/pkg/failure"
	"github.com/savioruz/bookease/pkg/logger"
	"github.com/savioruz/bookease/pkg/ratelimit"
)

type Handler struct {
	service   service.PaymentService
	logger    logger.Interface
	validator *validator.Validate
	limiter   *ratelimit.Store
	allowFake bool
}

func New(s service.PaymentService, l logger.Interface, v *validator.Validate, limiter *ratelimit.Store, cfg *config.Config) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
		limiter:   limiter,
		allowFake: cfg.Payment.AllowFake,
	}
}

const (
	identifier = "http - payments - %s"

	routepath = "/payment"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	payment := r.Group(routepath)

	payment.Post("/create-order", middleware.RateLimit(h.limiter, h.logger), h.CreateOrder)
	payment.Post("/verify", h.Verify)

	if h.allowFake {
		payment.Post("/fake/:"+constant.RequestParamOrderID+"/pay", h.FakePay)
	}
}

// CreateOrder godoc
// @Summary Create payment order
// @Description Issue a payment order for the booking fee
// @Tags payment
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Order request"
// @Success 200 {object} dto.CreateOrderResponse
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /payment/create-order [post]
func (h *Handler) CreateOrder(ctx *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "CreateOrder - body parser error: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, "CreateOrder - validation error: "+err.Error())

		return response.WithError(ctx, failure.BadRequestFromString("Invalid amount"))
	}

	res, err := h.service.CreateOrder(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error(identifier, "CreateOrder - request_id: "+middleware.RequestIDFrom(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// Verify godoc
// @Summary Verify payment
// @Description Validate a checkout confirmation and consume its order
// @Tags payment
// @Accept json
// @Produce json
// @Param confirmation body dto.VerifyPaymentRequest true "Checkout confirmation"
// @Success 200 {object} dto.VerifyPaymentResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /payment/verify [post]
func (h *Handler) Verify(ctx *fiber.Ctx) error {
	var req dto.VerifyPaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "Verify - body parser error: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return response.WithJSON(ctx, fiber.StatusOK, dto.VerifyPaymentResponse{Success: false})
	}

	res, err := h.service.Verify(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error(identifier, "Verify - request_id: "+middleware.RequestIDFrom(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// FakePay godoc
// @Summary Simulate a payment
// @Description Development only. Returns a signed confirmation for an order issued by the signature gateway
// @Tags payment
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} dto.VerifyPaymentRequest
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /payment/fake/{orderId}/pay [post]
func (h *Handler) FakePay(ctx *fiber.Ctx) error {
	res, err := h.service.FakePay(ctx.UserContext(), ctx.Params(constant.RequestParamOrderID))
	if err != nil {
		h.logger.Error(identifier, "FakePay - request_id: "+middleware.RequestIDFrom(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}
