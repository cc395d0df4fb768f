package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/savioruz/bookease/config"
	_ "github.com/savioruz/bookease/docs" // Swagger docs
	adminHandler "github.com/savioruz/bookease/internal/domains/admin/handler"
	authHandler "github.com/savioruz/bookease/internal/domains/auth/handler"
	bookingHandler "github.com/savioruz/bookease/internal/domains/bookings/handler"
	paymentHandler "github.com/savioruz/bookease/internal/domains/payments/handler"
	userHandler "github.com/savioruz/bookease/internal/domains/user/handler"

	"github.com/savioruz/bookease/internal/delivery/http/middleware"
	"github.com/savioruz/bookease/pkg/logger"
)

type Handlers struct {
	Auth    *authHandler.Handler
	User    *userHandler.Handler
	Booking *bookingHandler.Handler
	Payment *paymentHandler.Handler
	Admin   *adminHandler.Handler
}

// NewRouter initializes the HTTP router and registers the routes for the application.
// Swagger spec:
// @title BookEase API
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	l logger.Interface,
	gatherer prometheus.Gatherer,
	handlers Handlers,
) {
	// Options
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(l))
	app.Use(middleware.Recovery(l))
	app.Use(middleware.CORS(cfg))

	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := app.Group("/api")
	{
		handlers.Auth.RegisterRoutes(api)
		handlers.User.RegisterRoutes(api)
		handlers.Booking.RegisterRoutes(api)
		handlers.Payment.RegisterRoutes(api)
		handlers.Admin.RegisterRoutes(api)
	}

	app.Use("*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}
