package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every environment-driven setting the service reads at boot.
// Provider keys may be empty; the gateways that need them return an explicit
// "not configured" error instead of crashing.
type Config struct {
	Port        string
	AppBaseURL  string
	DatabaseURL string

	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	SessionSecret string
	SessionTTL    time.Duration

	GoogleAPIKey string

	StripeSecretKey     string
	StripeWebhookSecret string
	StripePriceIDPro    string

	SendgridAPIKey string
	EmailFrom      string

	GenerateRatePerMinute int
	GenerateRateBurst     int
}

// Load reads .env if present, then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        GetEnvAsString("PORT", "8080"),
		AppBaseURL:  GetEnvAsString("APP_BASE_URL", "http://localhost:3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		RedisURL:      os.Getenv("REDIS_URL"),
		RedisHost:     GetEnvAsString("REDIS_HOST", "localhost"),
		RedisPort:     GetEnvAsString("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       GetEnvAsInt("REDIS_DB", 0),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    GetEnvAsDuration("SESSION_TTL", 8*time.Hour),

		GoogleAPIKey: os.Getenv("GOOGLE_API_KEY"),

		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		StripePriceIDPro:    os.Getenv("STRIPE_PRICE_ID_PRO"),

		SendgridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		EmailFrom:      GetEnvAsString("EMAIL_FROM", "no-reply@weaver.ai"),

		GenerateRatePerMinute: GetEnvAsInt("GENERATE_RATE_PER_MINUTE", 6),
		GenerateRateBurst:     GetEnvAsInt("GENERATE_RATE_BURST", 2),
	}
}
