package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Store backends selectable with TOKEN_STORE.
const (
	StoreDynamo = "dynamodb"
	StoreRedis  = "redis"
)

// ErrMissingTable is returned by Load when DYNAMODB_TABLE is not set.
var ErrMissingTable = errors.New("DYNAMODB_TABLE environment variable required")

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	// TokenTable names the table (DynamoDB) or key namespace (Redis) tokens are written to.
	TokenTable      string
	DynamoBootstrap bool

	TokenStore     string
	RedisURL       string
	RedisKeyPrefix string

	TokenLength int

	JWTPublicKeyPath string
	AllowedOrigins   []string // CORS allowed origins
}

// Load reads all configuration from environment variables.
// The token table has no default: a deployment without it cannot issue tokens.
func Load() (*Config, error) {
	cfg := &Config{
		AppPort:          getEnv("APP_PORT", "3000"),
		AppEnv:           getEnv("APP_ENV", "development"),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL:   getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID:   getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:     getEnv("AWS_SECRET_ACCESS_KEY", ""),
		TokenTable:       getEnv("DYNAMODB_TABLE", ""),
		DynamoBootstrap:  getEnvBool("DYNAMO_BOOTSTRAP", false),
		TokenStore:       strings.ToLower(getEnv("TOKEN_STORE", StoreDynamo)),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379/0"),
		RedisKeyPrefix:   getEnv("REDIS_KEY_PREFIX", "2fa:"),
		TokenLength:      getEnvInt("TOKEN_LENGTH", 15),
		JWTPublicKeyPath: getEnv("JWT_PUBLIC_KEY_PATH", ""),
		AllowedOrigins:   strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
	if cfg.TokenTable == "" {
		return nil, ErrMissingTable
	}
	if cfg.TokenStore != StoreDynamo && cfg.TokenStore != StoreRedis {
		return nil, errors.New("TOKEN_STORE must be one of: dynamodb, redis")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
