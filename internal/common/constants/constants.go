package constants

import "time"

const (
	PasswordMinLength = 6
	BcryptCost        = 10

	DefaultMaxRequestSize = 1 << 20

	ServerReadHeaderTimeout = 10 * time.Second
	ServerReadTimeout       = 30 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second

	ShutdownTimeout = 30 * time.Second
	DrainTimeout    = 10 * time.Second

	DefaultHTTPPort       = "5000"
	DefaultRequestTimeout = 5 * time.Second
	DefaultTokenTTL       = 24 * time.Hour

	LoggerMaxSize    = 100
	LoggerMaxBackups = 3
	LoggerMaxAge     = 28
)
