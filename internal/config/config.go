package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	APIURL          string
	AuthURL         string
	ProjectKey      string
	ClientID        string
	ClientSecret    string
	Scopes          []string
	DefaultLocale   string
	DefaultCurrency string
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		APIURL:          envOrDefault("CT_API_URL", "https://api.europe-west1.gcp.commercetools.com"),
		AuthURL:         envOrDefault("CT_AUTH_URL", "https://auth.europe-west1.gcp.commercetools.com"),
		ProjectKey:      envOrDefault("CT_PROJECT_KEY", ""),
		ClientID:        envOrDefault("CT_CLIENT_ID", ""),
		ClientSecret:    envOrDefault("CT_CLIENT_SECRET", ""),
		Scopes:          envList("CT_SCOPES"),
		DefaultLocale:   envOrDefault("DEFAULT_LOCALE", "en_GB"),
		DefaultCurrency: envOrDefault("DEFAULT_CURRENCY", "EUR"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
