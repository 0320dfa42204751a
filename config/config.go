package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration. Secrets (JWT secret,
// database URL, encryption key, third-party API keys) come from the
// secrets manager, not from here.
type Config struct {
	// API Configuration
	APIPort        string
	APIHost        string
	APIEnvironment string

	// JWT & Security
	JWTExpirationHours int

	// CORS
	CORSAllowedOrigins []string

	// Rate Limiting
	RateLimitRequestsPerMinute int
	RateLimitBurst             int

	// Stripe
	CheckoutSuccessURL string
	CheckoutCancelURL  string

	// Google OAuth
	GoogleClientID   string
	OAuthCallbackURL string

	// Matching API
	SJMBaseURL string

	// Status page
	StatusProbeEnabled bool

	// Frontend
	FrontendURL string

	// Sentry
	SentryDSN string

	// Logging
	LogLevel  string
	LogFormat string
}

// Load loads configuration from environment variables
func Load() *Config {
	frontend := getEnv("FRONTEND_URL", "http://localhost:3000")

	return &Config{
		// API
		APIPort:        getEnv("API_PORT", "8080"),
		APIHost:        getEnv("API_HOST", "0.0.0.0"),
		APIEnvironment: getEnv("API_ENVIRONMENT", "development"),

		// JWT
		JWTExpirationHours: getEnvAsInt("JWT_EXPIRATION_HOURS", 24),

		// Rate Limiting
		RateLimitRequestsPerMinute: getEnvAsInt("RATE_LIMIT_REQUESTS_PER_MINUTE", 60),
		RateLimitBurst:             getEnvAsInt("RATE_LIMIT_BURST", 10),

		// Stripe
		CheckoutSuccessURL: getEnv("CHECKOUT_SUCCESS_URL", frontend+"/dashboard/billing?checkout=success"),
		CheckoutCancelURL:  getEnv("CHECKOUT_CANCEL_URL", frontend+"/pricing?checkout=cancelled"),

		// Google OAuth
		GoogleClientID:   getEnv("GOOGLE_CLIENT_ID", ""),
		OAuthCallbackURL: getEnv("OAUTH_CALLBACK_URL", "http://localhost:8080/api/v1/auth/oauth"),

		// Matching API
		SJMBaseURL: getEnv("SJM_BASE_URL", ""),

		// Status page
		StatusProbeEnabled: getEnvAsBool("STATUS_PROBE_ENABLED", true),

		// Frontend
		FrontendURL: frontend,

		// Sentry
		SentryDSN: getEnv("SENTRY_DSN", ""),

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
