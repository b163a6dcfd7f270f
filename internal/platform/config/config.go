package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderLocal  = "local"
	ProviderHosted = "hosted"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// IdentityProvider selects where admin credentials live: "local"
	// keeps them in our own Postgres, "hosted" delegates to the external
	// identity API.
	IdentityProvider string
	IdentityAPIURL   string
	IdentityAPIToken string

	StoreTimeout      time.Duration
	SessionTTL        time.Duration
	ReconcileInterval time.Duration
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "tribune"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	provider := strings.TrimSpace(strings.ToLower(os.Getenv("IDENTITY_PROVIDER")))
	if provider != ProviderHosted {
		provider = ProviderLocal
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),

		RedisAddr:     redisAddr,
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),

		IdentityProvider: provider,
		IdentityAPIURL:   os.Getenv("IDENTITY_API_URL"),
		IdentityAPIToken: os.Getenv("IDENTITY_API_TOKEN"),

		StoreTimeout:      envDuration("STORE_TIMEOUT", 5*time.Second),
		SessionTTL:        envDuration("SESSION_TTL", 12*time.Hour),
		ReconcileInterval: envDuration("RECONCILE_INTERVAL", 5*time.Minute),
	}, nil
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
