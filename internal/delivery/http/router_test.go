package http

import (
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/savioruz/bookease/config"
	adminHandler "github.com/savioruz/bookease/internal/domains/admin/handler"
	adminMock "github.com/savioruz/bookease/internal/domains/admin/mock"
	authHandler "github.com/savioruz/bookease/internal/domains/auth/handler"
	authMock "github.com/savioruz/bookease/internal/domains/auth/mock"
	bookingHandler "github.com/savioruz/bookease/internal/domains/bookings/handler"
	bookingDto "github.com/savioruz/bookease/internal/domains/bookings/dto"
	bookingMock "github.com/savioruz/bookease/internal/domains/bookings/mock"
	paymentHandler "github.com/savioruz/bookease/internal/domains/payments/handler"
	paymentMock "github.com/savioruz/bookease/internal/domains/payments/mock"
	userHandler "github.com/savioruz/bookease/internal/domains/user/handler"
	userMock "github.com/savioruz/bookease/internal/domains/user/mock"
	"github.com/savioruz/bookease/pkg/constant"
	"github.com/savioruz/bookease/pkg/httpserver"
	"github.com/savioruz/bookease/pkg/logger"
	"github.com/savioruz/bookease/pkg/metrics"
	"github.com/savioruz/bookease/pkg/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*fiber.App, *bookingMock.MockBookingService, *metrics.BookingMetrics) {
	t.Helper()

	ctrl := gomock.NewController(t)
	l := logger.New("disabled")
	v := validator.New()
	cfg := &config.Config{}

	bookings := bookingMock.NewMockBookingService(ctrl)
	reg := prometheus.NewRegistry()
	m := metrics.NewBookingMetrics(reg)

	app := fiber.New(httpserver.Config(time.Second, time.Second))
	NewRouter(app, cfg, l, reg, Handlers{
		Auth:    authHandler.New(authMock.NewMockAuthService(ctrl), l, v),
		User:    userHandler.New(userMock.NewMockUserService(ctrl), l),
		Booking: bookingHandler.New(bookings, l, v),
		Payment: paymentHandler.New(paymentMock.NewMockPaymentService(ctrl), l, v, ratelimit.New(10, 10, time.Minute), cfg),
		Admin:   adminHandler.New(adminMock.NewMockAdminService(ctrl), l),
	})

	return app, bookings, m
}

func TestNewRouter(t *testing.T) {
	t.Run("success: health check", func(t *testing.T) {
		app, _, _ := setup(t)

		resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/healthz", nil))
		require.NoError(t, err)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"status":"ok"}`, string(body))
	})

	t.Run("success: api routes are mounted under /api", func(t *testing.T) {
		app, bookings, _ := setup(t)

		bookings.EXPECT().GetBookedSlots(gomock.Any(), gomock.Any()).Return(bookingDto.BookedSlotsResponse{Booked: []string{}}, nil)

		resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/api/bookings/slots/2030-03-10", nil))
		require.NoError(t, err)

		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(constant.HeaderRequestID))
	})

	t.Run("success: metrics exposed", func(t *testing.T) {
		app, _, m := setup(t)
		m.ObserveCommit("created")

		resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/metrics", nil))
		require.NoError(t, err)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "bookease_bookings_commits_total")
	})

	t.Run("error: unknown route", func(t *testing.T) {
		app, _, _ := setup(t)

		resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/api/nope", nil))
		require.NoError(t, err)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `{"error":"route not found"}`, string(body))
	})
}
