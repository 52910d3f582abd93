// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrWeakSecret is returned when JWT_SECRET is shorter than MinSecretLen bytes.
var ErrWeakSecret = errors.New("JWT_SECRET must be at least 16 bytes")

// MinSecretLen is the minimum signing secret length.
const MinSecretLen = 16

// Config holds every setting of the server and the operator CLI.
type Config struct {
	SpannerDatabase string `env:"SPANNER_DATABASE" envDefault:"projects/test-project/instances/dev-instance/databases/aptmart-db"`
	HTTPPort        string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string `env:"LOG_FORMAT" envDefault:"json"`

	Auth    Auth
	Booking Booking
	Cache   Cache
	Outbox  Outbox

	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Auth configures token issuing and the admin account.
type Auth struct {
	JWTSecret         string        `env:"JWT_SECRET"`
	JWTIssuer         string        `env:"JWT_ISSUER" envDefault:"aptmart"`
	TokenTTL          time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	AdminEmail        string        `env:"ADMIN_EMAIL" envDefault:"admin@aptmart.local"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
}

// Booking configures order and booking placement.
type Booking struct {
	RatePerSecond  float64 `env:"BOOKING_RATE_PER_SECOND" envDefault:"1"`
	RateBurst      int     `env:"BOOKING_RATE_BURST" envDefault:"5"`
	ChatBaseURL    string  `env:"CHAT_BASE_URL" envDefault:"https://wa.me/"`
	CurrencySymbol string  `env:"CURRENCY_SYMBOL" envDefault:"₹"`
}

// Cache configures the storefront cache. An empty RedisAddr disables it.
type Cache struct {
	RedisAddr     string        `env:"REDIS_ADDR"`
	StorefrontTTL time.Duration `env:"STOREFRONT_CACHE_TTL" envDefault:"30s"`
}

// Outbox configures the relay and the retention sweep.
type Outbox struct {
	PollInterval       time.Duration `env:"OUTBOX_POLL_INTERVAL" envDefault:"1s"`
	CleanupSchedule    string        `env:"OUTBOX_CLEANUP_SCHEDULE" envDefault:"@daily"`
	CompletedRetention time.Duration `env:"OUTBOX_COMPLETED_RETENTION" envDefault:"720h"`
	FailedRetention    time.Duration `env:"OUTBOX_FAILED_RETENTION" envDefault:"2160h"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads an optional .env file, parses the environment and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that have no usable default.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < MinSecretLen {
		return ErrWeakSecret
	}
	if c.Booking.RatePerSecond <= 0 || c.Booking.RateBurst <= 0 {
		return fmt.Errorf("booking rate limit must be positive")
	}
	if c.Outbox.PollInterval <= 0 {
		return fmt.Errorf("OUTBOX_POLL_INTERVAL must be positive")
	}
	if c.Outbox.CompletedRetention <= 0 || c.Outbox.FailedRetention <= 0 {
		return fmt.Errorf("outbox retention must be positive")
	}
	if !strings.HasSuffix(c.Booking.ChatBaseURL, "/") {
		c.Booking.ChatBaseURL += "/"
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return ":" + c.HTTPPort
}
