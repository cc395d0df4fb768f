package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/bookease/pkg/constant"
	"github.com/savioruz/bookease/pkg/jwt"
	"github.com/savioruz/bookease/pkg/logger"
	"github.com/savioruz/bookease/pkg/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	jwt.Initialize("test-app", "test-secret-key", time.Hour)
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/me", Jwt(), func(c *fiber.Ctx) error {
		id, err := CurrentIdentity(c)
		if err != nil {
			return err
		}

		return c.SendString(id.UserID + "|" + id.Email + "|" + id.Name)
	})
	app.Get("/admin", Jwt(), AdminOnly(), func(c *fiber.Ctx) error {
		return c.SendString("admin")
	})

	return app
}

func bearer(t *testing.T, level string) string {
	t.Helper()

	token, err := jwt.GenerateToken("u-1", "ana@example.com", "Ana", level)
	require.NoError(t, err)

	return constant.BearerPrefix + " " + token
}

func TestJwt(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"error: missing header", "", http.StatusUnauthorized, `{"error":"missing authorization header"}`},
		{"error: wrong scheme", "Basic abc", http.StatusUnauthorized, `{"error":"invalid authorization header format"}`},
		{"error: invalid token", "Bearer nope", http.StatusUnauthorized, `{"error":"invalid token"}`},
		{"success: identity in context", bearer(t, constant.UserRoleUser), http.StatusOK, "u-1|ana@example.com|Ana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(constant.HeaderAuthorization, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)

			body, _ := io.ReadAll(resp.Body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.body, string(body))
			assert.NotEmpty(t, resp.Header.Get(constant.HeaderRequestID))
		})
	}
}

func TestAdminOnly(t *testing.T) {
	app := newTestApp()

	t.Run("error: non admin is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set(constant.HeaderAuthorization, bearer(t, constant.UserRoleUser))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("success: admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set(constant.HeaderAuthorization, bearer(t, constant.UserRoleAdmin))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestRateLimit(t *testing.T) {
	app := fiber.New()
	app.Post("/orders", RateLimit(ratelimit.New(60, 1, time.Minute), logger.New("disabled")), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusCreated)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/orders", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/orders", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}
