package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/bookease/internal/domains/admin/mock"
	"github.com/savioruz/bookease/internal/domains/bookings/dto"
	"github.com/savioruz/bookease/pkg/constant"
	"github.com/savioruz/bookease/pkg/failure"
	"github.com/savioruz/bookease/pkg/httpserver"
	"github.com/savioruz/bookease/pkg/jwt"
	log "github.com/savioruz/bookease/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	jwt.Initialize("test-app", "test-secret-key", time.Hour)
}

func setup(t *testing.T) (*fiber.App, *mock.MockAdminService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mock.NewMockAdminService(ctrl)
	l := log.NewMockInterface(ctrl)
	l.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	app := fiber.New(httpserver.Config(time.Second, time.Second))
	New(svc, l).RegisterRoutes(app.Group("/api"))

	return app, svc
}

func request(t *testing.T, method, target, level string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	if level != "" {
		token, err := jwt.GenerateToken("8a4c2e0e-8d5c-4b8e-9b55-2d1f7f2d3c11", "root@example.com", "Root", level)
		require.NoError(t, err)

		req.Header.Set(constant.HeaderAuthorization, constant.BearerPrefix+" "+token)
	}

	return req
}

func TestHandler_ListBookings(t *testing.T) {
	t.Run("error: regular user is forbidden", func(t *testing.T) {
		app, _ := setup(t)

		resp, err := app.Test(request(t, http.MethodGet, "/api/admin/bookings", constant.UserRoleUser))
		require.NoError(t, err)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.JSONEq(t, `{"error":"Admin access required"}`, string(body))
	})

	t.Run("error: anonymous is unauthorized", func(t *testing.T) {
		app, _ := setup(t)

		resp, err := app.Test(request(t, http.MethodGet, "/api/admin/bookings", ""))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("success: bare array", func(t *testing.T) {
		app, svc := setup(t)

		svc.EXPECT().ListBookings(gomock.Any()).Return([]dto.BookingResponse{{ID: "b-1", Username: "Ana"}}, nil)

		resp, err := app.Test(request(t, http.MethodGet, "/api/admin/bookings", constant.UserRoleAdmin))
		require.NoError(t, err)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), `[{"id":"b-1"`)
	})
}

func TestHandler_DeleteBooking(t *testing.T) {
	t.Run("error: not found", func(t *testing.T) {
		app, svc := setup(t)

		svc.EXPECT().DeleteBooking(gomock.Any(), "b-1").Return(failure.NotFound("Booking not found"))

		resp, err := app.Test(request(t, http.MethodDelete, "/api/admin/bookings/b-1", constant.UserRoleAdmin))
		require.NoError(t, err)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `{"error":"Booking not found"}`, string(body))
	})

	t.Run("success: no content", func(t *testing.T) {
		app, svc := setup(t)

		svc.EXPECT().DeleteBooking(gomock.Any(), "b-1").Return(nil)

		resp, err := app.Test(request(t, http.MethodDelete, "/api/admin/bookings/b-1", constant.UserRoleAdmin))
		require.NoError(t, err)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})
}
