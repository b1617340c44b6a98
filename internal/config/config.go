package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr          string
	ShutdownTimeout   time.Duration
	APIBaseURL        string
	APITimeout        time.Duration
	RedisAddr         string
	RedisPassword     string
	SessionSecret     string
	AllowedOrigins    []string
	CartTTL           time.Duration
	ConfirmationGrace time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:          envOrDefault("HTTP_ADDR", ":8080"),
		ShutdownTimeout:   envSeconds("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		APIBaseURL:        envOrDefault("API_BASE_URL", "https://backend.mama-hieam.shop/api/v1"),
		APITimeout:        envSeconds("API_TIMEOUT_SECONDS", 10*time.Second),
		RedisAddr:         envOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     envOrDefault("REDIS_PASSWORD", ""),
		SessionSecret:     envOrDefault("SESSION_SECRET", "mamahiam-dev-secret"),
		AllowedOrigins:    envList("ALLOWED_ORIGINS", nil),
		CartTTL:           envHours("CART_TTL_HOURS", 12*time.Hour),
		ConfirmationGrace: envSeconds("CONFIRMATION_GRACE_SECONDS", time.Second),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envSeconds(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envHours(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		hours, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(hours) * time.Hour
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
