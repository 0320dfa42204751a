package secrets

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"
)

// LoadString loads a secret as a string with optional fallback
func LoadString(ctx context.Context, m Manager, key, fallback string) string {
	value, err := m.GetSecret(ctx, key)
	if err != nil {
		return fallback
	}
	return value
}

// LoadStringRequired loads a required secret (fails if not found)
func LoadStringRequired(ctx context.Context, m Manager, key string) (string, error) {
	value, err := m.GetSecret(ctx, key)
	if err != nil {
		return "", fmt.Errorf("required secret %s not found: %w", key, err)
	}
	if value == "" {
		return "", fmt.Errorf("required secret %s is empty", key)
	}
	return value, nil
}

// CommonSecrets holds the secrets the API server needs at startup
type CommonSecrets struct {
	JWTSecret           string
	DatabaseURL         string
	EncryptionKey       string // base64, 32 bytes decoded; seals API keys at rest
	RedisURL            string
	StripeSecretKey     string
	StripeWebhookSecret string
	OpenAIAPIKey        string
	MatchingAPIKey      string
	GoogleClientSecret  string
}

// LoadCommonSecrets loads all common secrets from the manager. JWT
// secret, database URL, encryption key and Redis URL are required; the
// rest degrade gracefully when absent.
func LoadCommonSecrets(ctx context.Context, m Manager) (*CommonSecrets, error) {
	secrets := &CommonSecrets{}

	jwtSecret, err := LoadStringRequired(ctx, m, "JWT_SECRET")
	if err != nil {
		return nil, err
	}
	secrets.JWTSecret = jwtSecret

	dbURL, err := LoadStringRequired(ctx, m, "DATABASE_URL")
	if err != nil {
		return nil, err
	}
	secrets.DatabaseURL = dbURL

	encryptionKey, err := LoadStringRequired(ctx, m, "ENCRYPTION_KEY")
	if err != nil {
		return nil, err
	}
	secrets.EncryptionKey = encryptionKey

	redisURL, err := LoadStringRequired(ctx, m, "REDIS_URL")
	if err != nil {
		return nil, err
	}
	secrets.RedisURL = redisURL

	secrets.StripeSecretKey = LoadString(ctx, m, "STRIPE_SECRET_KEY", "")
	secrets.StripeWebhookSecret = LoadString(ctx, m, "STRIPE_WEBHOOK_SECRET", "")
	secrets.OpenAIAPIKey = LoadString(ctx, m, "OPENAI_API_KEY", "")
	secrets.MatchingAPIKey = LoadString(ctx, m, "SNAP_JOBS_API_KEY", "")
	secrets.GoogleClientSecret = LoadString(ctx, m, "GOOGLE_CLIENT_SECRET", "")

	return secrets, nil
}

// AutoDetectBackend determines the secrets backend from environment
func AutoDetectBackend() string {
	if getEnvBool("AWS_SECRETS_MANAGER_ENABLED") {
		return "aws-secrets-manager"
	}

	// Running inside AWS implies the managed backend
	if os.Getenv("AWS_REGION") != "" && os.Getenv("AWS_EXECUTION_ENV") != "" {
		return "aws-secrets-manager"
	}

	return "env"
}

// AutoDetectConfig creates a config with auto-detected backend
func AutoDetectConfig() Config {
	cfg := Config{
		Backend:       AutoDetectBackend(),
		AWSRegion:     os.Getenv("AWS_REGION"),
		CacheDuration: 5 * time.Minute,
	}

	if cfg.AWSRegion == "" {
		cfg.AWSRegion = "us-east-1"
	}

	return cfg
}

func getEnvBool(key string) bool {
	value := os.Getenv(key)
	if value == "" {
		return false
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return parsed
}
