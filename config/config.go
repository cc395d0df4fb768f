package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		App       App
		CORS      CORS
		Cache     Cache
		HTTP      HTTP
		Log       Log
		Pg        Pg
		Redis     Redis
		Swagger   Swagger
		Schedule  Schedule
		JWT       JWT
		Auth      Auth
		Payment   Payment
		Booking   Booking
		Mail      Mail
		RateLimit RateLimit
	}

	// ClientConfig is what bookctl needs. It never requires server secrets.
	ClientConfig struct {
		Log    Log
		Client Client
	}

	App struct {
		Name     string `env:"APP_NAME,required"`
		Version  string `env:"APP_VERSION,required"`
		Timezone string `env:"APP_TIMEZONE" envDefault:"UTC"`
	}

	CORS struct {
		AllowCredentials bool   `env:"APP_CORS_ALLOW_CREDENTIALS"`
		AllowedHeaders   string `env:"APP_CORS_ALLOWED_HEADERS"`
		AllowedMethods   string `env:"APP_CORS_ALLOWED_METHODS"`
		AllowedOrigins   string `env:"APP_CORS_ALLOWED_ORIGINS"`
		Enable           bool   `env:"APP_CORS_ENABLE"`
		MaxAgeSeconds    int    `env:"APP_CORS_MAX_AGE_SECONDS"`
	}

	Cache struct {
		Duration int `env:"CACHE_DURATIONS" envDefault:"300"`
	}

	HTTP struct {
		Port         string        `env:"HTTP_PORT,required"`
		ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"5s"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}

	Pg struct {
		PoolMax      int    `env:"PG_POOL_MAX,required"`
		ConnAttempts int    `env:"PG_CONN_ATTEMPTS" envDefault:"10"`
		Host         string `env:"PG_HOST,required"`
		Port         int    `env:"PG_PORT,required"`
		User         string `env:"PG_USER"`
		Password     string `env:"PG_PASSWORD"`
		Dbname       string `env:"PG_DATABASE,required"`
		SSLMode      string `env:"PG_SSLMODE,required"`
		Timezone     string `env:"PG_TIMEZONE,required"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST,required"`
		Port     int    `env:"REDIS_PORT,required"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}

	Schedule struct {
		OrderExpiration string `env:"SCHEDULE_ORDER_EXPIRATION" envDefault:"0 */5 * * * *"`
	}

	JWT struct {
		Secret            string `env:"JWT_SECRET,required"`
		AccessTokenExpiry string `env:"JWT_ACCESS_TOKEN_EXPIRY" envDefault:"24h"`
	}

	Auth struct {
		AdminEmails string `env:"AUTH_ADMIN_EMAILS"`
	}

	Payment struct {
		Gateway   string        `env:"PAYMENT_GATEWAY" envDefault:"signature"`
		Fee       int64         `env:"PAYMENT_FEE" envDefault:"500"`
		Currency  string        `env:"PAYMENT_CURRENCY" envDefault:"INR"`
		KeySecret string        `env:"PAYMENT_KEY_SECRET"`
		AllowFake bool          `env:"PAYMENT_ALLOW_FAKE" envDefault:"false"`
		OrderTTL  time.Duration `env:"PAYMENT_ORDER_TTL" envDefault:"30m"`
		Xendit    Xendit
	}

	Xendit struct {
		APIKey     string `env:"XENDIT_API_KEY"`
		SuccessURL string `env:"XENDIT_SUCCESS_URL"`
		FailureURL string `env:"XENDIT_FAILURE_URL"`
	}

	Booking struct {
		Slots           string `env:"BOOKING_SLOTS" envDefault:"09:00 AM,10:00 AM,11:00 AM,12:00 PM,01:00 PM,02:00 PM,03:00 PM,04:00 PM,05:00 PM"`
		DurationMinutes int    `env:"BOOKING_DURATION_MINUTES" envDefault:"30"`
		ServiceID       string `env:"BOOKING_SERVICE_ID" envDefault:"1"`
	}

	Mail struct {
		Enabled      bool   `env:"MAIL_ENABLED" envDefault:"false"`
		SMTPHost     string `env:"MAIL_SMTP_HOST"`
		SMTPPort     int    `env:"MAIL_SMTP_PORT" envDefault:"587"`
		SMTPUsername string `env:"MAIL_SMTP_USERNAME"`
		SMTPPassword string `env:"MAIL_SMTP_PASSWORD"`
		FromEmail    string `env:"MAIL_FROM_EMAIL"`
		FromName     string `env:"MAIL_FROM_NAME" envDefault:"BookEase"`
	}

	RateLimit struct {
		OrdersPerMinute int           `env:"RATE_LIMIT_ORDERS_PER_MINUTE" envDefault:"20"`
		Burst           int           `env:"RATE_LIMIT_BURST" envDefault:"5"`
		IdleTTL         time.Duration `env:"RATE_LIMIT_IDLE_TTL" envDefault:"10m"`
	}

	Client struct {
		BaseURL          string        `env:"BOOKEASE_API_URL" envDefault:"http://localhost:5000"`
		SessionFile      string        `env:"BOOKEASE_SESSION_FILE"`
		RequestTimeout   time.Duration `env:"BOOKEASE_REQUEST_TIMEOUT" envDefault:"15s"`
		Slots            string        `env:"BOOKEASE_SLOTS" envDefault:"09:00 AM,10:00 AM,11:00 AM,12:00 PM,01:00 PM,02:00 PM,03:00 PM,04:00 PM,05:00 PM"`
		Amount           int64         `env:"BOOKEASE_AMOUNT" envDefault:"500"`
		Currency         string        `env:"BOOKEASE_CURRENCY" envDefault:"INR"`
		MerchantName     string        `env:"BOOKEASE_MERCHANT_NAME" envDefault:"BookEase"`
		ThemeColor       string        `env:"BOOKEASE_THEME_COLOR" envDefault:"#6366F1"`
		StageTimeout     time.Duration `env:"BOOKEASE_STAGE_TIMEOUT" envDefault:"0s"`
		SlotQueryRetries int           `env:"BOOKEASE_SLOT_QUERY_RETRIES" envDefault:"1"`
		RetryBackoff     time.Duration `env:"BOOKEASE_RETRY_BACKOFF" envDefault:"500ms"`
		Reconcile        bool          `env:"BOOKEASE_RECONCILE_AFTER_COMMIT" envDefault:"true"`
		FailureHold      time.Duration `env:"BOOKEASE_FAILURE_HOLD" envDefault:"3s"`
		NavigateAfter    time.Duration `env:"BOOKEASE_NAVIGATE_AFTER" envDefault:"2s"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config failed: %w", err)
	}

	return cfg, nil
}

func NewClient() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse client config failed: %w", err)
	}

	return cfg, nil
}
