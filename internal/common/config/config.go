package config

import (
	"os"
	"time"

	"github.com/mkravets/job-portal/backend/internal/common/constants"
)

// DevJWTSecret is used when JWT_SECRET is not set. Fine for local
// development, never for a deployed instance.
const DevJWTSecret = "your-secret-key-here"

type APIConfig struct {
	HTTPPort       string
	JWTSecret      string
	TokenTTL       time.Duration
	RequestTimeout time.Duration
}

func LoadAPIConfig() APIConfig {
	return APIConfig{
		HTTPPort:       getEnv("PORT", constants.DefaultHTTPPort),
		JWTSecret:      getEnv("JWT_SECRET", DevJWTSecret),
		TokenTTL:       getDurationEnv("TOKEN_TTL", constants.DefaultTokenTTL),
		RequestTimeout: getDurationEnv("REQUEST_TIMEOUT", constants.DefaultRequestTimeout),
	}
}

// UsingDevSecret reports whether the config fell back to the built-in
// development signing secret.
func (c APIConfig) UsingDevSecret() bool {
	return c.JWTSecret == DevJWTSecret
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
