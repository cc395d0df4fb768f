//go:build wireinject
// +build wireinject

package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"github.com/savioruz/bookease/config"
	"github.com/savioruz/bookease/internal/delivery/http"

	authHandler "github.com/savioruz/bookease/internal/domains/auth/handler"
	authService "github.com/savioruz/bookease/internal/domains/auth/service"

	userHandler "github.com/savioruz/bookease/internal/domains/user/handler"
	userRepository "github.com/savioruz/bookease/internal/domains/user/repository"
	userService "github.com/savioruz/bookease/internal/domains/user/service"

	bookingHandler "github.com/savioruz/bookease/internal/domains/bookings/handler"
	bookingRepository "github.com/savioruz/bookease/internal/domains/bookings/repository"
	bookingService "github.com/savioruz/bookease/internal/domains/bookings/service"

	adminHandler "github.com/savioruz/bookease/internal/domains/admin/handler"
	adminService "github.com/savioruz/bookease/internal/domains/admin/service"

	"github.com/savioruz/bookease/internal/domains/payments/gateway"
	paymentHandler "github.com/savioruz/bookease/internal/domains/payments/handler"
	paymentRepository "github.com/savioruz/bookease/internal/domains/payments/repository"
	paymentService "github.com/savioruz/bookease/internal/domains/payments/service"

	"github.com/savioruz/bookease/pkg/httpserver"
	"github.com/savioruz/bookease/pkg/jwt"
	"github.com/savioruz/bookease/pkg/logger"
	"github.com/savioruz/bookease/pkg/mail"
	"github.com/savioruz/bookease/pkg/metrics"
	"github.com/savioruz/bookease/pkg/postgres"
	"github.com/savioruz/bookease/pkg/ratelimit"
	"github.com/savioruz/bookease/pkg/redis"
	"github.com/savioruz/bookease/pkg/xendit"
)

// Application represents the dependency-injected app
type Application struct {
	HTTPServer *httpserver.Server
	Logger     logger.Interface
	PG         *postgres.Postgres
	Redis      *redis.Redis
	JWT        *jwt.JWT
	Scheduler  *cron.Cron
}

func provideUserQuerier() userRepository.Querier {
	return userRepository.New()
}

func provideBookingQuerier() bookingRepository.Querier {
	return bookingRepository.New()
}

func providePaymentQuerier() paymentRepository.Querier {
	return paymentRepository.New()
}

var userDomain = wire.NewSet(
	provideUserQuerier,
	userService.New,
	userHandler.New,
)

var authDomain = wire.NewSet(
	authService.New,
	authHandler.New,
)

var bookingDomain = wire.NewSet(
	provideBookingQuerier,
	bookingService.New,
	bookingHandler.New,
)

var adminDomain = wire.NewSet(
	adminService.New,
	adminHandler.New,
)

var paymentDomain = wire.NewSet(
	providePaymentQuerier,
	xendit.New,
	provideInvoiceClient,
	gateway.New,
	paymentService.New,
	paymentHandler.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	bookingDomain,
	adminDomain,
	paymentDomain,
)

func InitializeApp(cfg *config.Config) (*Application, error) {
	wire.Build(
		// Infrastructure providers
		provideLogger,
		providePostgres,
		providePgxIface,
		provideValidator,
		provideRedis,
		provideRedisCache,
		provideJWT,
		provideMetrics,
		provideGatherer,
		provideMailer,
		provideRateLimiter,

		domains,

		wire.Struct(new(http.Handlers), "*"),

		// HTTP server
		provideRouter,
		provideHTTPServer,

		// Background jobs
		NewScheduler,

		// Application
		wire.Struct(new(Application), "*"),
	)

	return &Application{}, nil
}

func provideRouter(
	cfg *config.Config,
	l logger.Interface,
	g prometheus.Gatherer,
	h http.Handlers,
) *fiber.App {
	app := fiber.New(httpserver.Config(cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout))

	http.NewRouter(
		app,
		cfg,
		l,
		g,
		h,
	)

	return app
}

func provideLogger(cfg *config.Config) logger.Interface {
	return logger.New(cfg.Log.Level)
}

func provideJWT(cfg *config.Config) *jwt.JWT {
	jwt.Initialize(cfg.App.Name, cfg.JWT.Secret, jwt.ParseDuration(cfg.JWT.AccessTokenExpiry))
	return jwt.GetInstance()
}

func providePostgres(cfg *config.Config, l logger.Interface) (*postgres.Postgres, error) {
	dsn := postgres.ConnectionBuilder(cfg.Pg.Host, cfg.Pg.Port, cfg.Pg.User, cfg.Pg.Password, cfg.Pg.Dbname, cfg.Pg.SSLMode, cfg.Pg.Timezone)
	pg, err := postgres.New(dsn,
		postgres.MaxPoolSize(cfg.Pg.PoolMax),
		postgres.ConnAttempts(cfg.Pg.ConnAttempts),
		postgres.Logger(l),
	)
	if err != nil {
		return nil, err
	}
	return pg, nil
}

func providePgxIface(pg *postgres.Postgres) postgres.PgxIface {
	return pg.Pool
}

func provideRedis(cfg *config.Config) (*redis.Redis, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	return redis.New(addr, cfg.Redis.Password, cfg.Redis.DB)
}

func provideRedisCache(r *redis.Redis, l logger.Interface) redis.IRedisCache {
	return redis.NewRedisCache(r.Client, l)
}

func provideValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func provideMetrics() *metrics.BookingMetrics {
	return metrics.NewBookingMetrics(prometheus.DefaultRegisterer)
}

func provideGatherer() prometheus.Gatherer {
	return prometheus.DefaultGatherer
}

// provideMailer returns a nil service when mail is disabled.
func provideMailer(cfg *config.Config) mail.Service {
	if !cfg.Mail.Enabled {
		return nil
	}

	return mail.New(mail.Config{
		SMTPHost:     cfg.Mail.SMTPHost,
		SMTPPort:     cfg.Mail.SMTPPort,
		SMTPUsername: cfg.Mail.SMTPUsername,
		SMTPPassword: cfg.Mail.SMTPPassword,
		FromEmail:    cfg.Mail.FromEmail,
		FromName:     cfg.Mail.FromName,
	})
}

func provideRateLimiter(cfg *config.Config) *ratelimit.Store {
	return ratelimit.New(cfg.RateLimit.OrdersPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
}

// provideInvoiceClient keeps a missing Xendit client a nil interface.
func provideInvoiceClient(c *xendit.Client) gateway.InvoiceClient {
	if c == nil {
		return nil
	}

	return c
}

func provideHTTPServer(cfg *config.Config, app *fiber.App) *httpserver.Server {
	return httpserver.New(
		httpserver.Port(cfg.HTTP.Port),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.App(app),
	)
}
