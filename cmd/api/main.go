package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhttp "github.com/mkravets/job-portal/backend/internal/auth/http"
	authservice "github.com/mkravets/job-portal/backend/internal/auth/service"
	"github.com/mkravets/job-portal/backend/internal/common/clock"
	"github.com/mkravets/job-portal/backend/internal/common/config"
	commoncrypto "github.com/mkravets/job-portal/backend/internal/common/crypto"
	commonhttp "github.com/mkravets/job-portal/backend/internal/common/http"
	"github.com/mkravets/job-portal/backend/internal/common/logger"
	srv "github.com/mkravets/job-portal/backend/internal/common/server"
	jobhttp "github.com/mkravets/job-portal/backend/internal/job/http"
	jobrepo "github.com/mkravets/job-portal/backend/internal/job/repository"
	jobservice "github.com/mkravets/job-portal/backend/internal/job/service"
	userrepo "github.com/mkravets/job-portal/backend/internal/user/repository"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_DIR"), "api", os.Getenv("LOG_LEVEL"))
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	cfg := config.LoadAPIConfig()
	if cfg.UsingDevSecret() {
		log.Warn("JWT_SECRET not set, using development secret")
	}

	clk := clock.NewRealClock()
	hasher := &commoncrypto.BcryptHasher{}
	idGenerator := commoncrypto.NewUUIDGenerator()

	users := userrepo.NewMemoryRepository()
	jobs := jobrepo.NewMemoryRepository()

	authService := authservice.NewAuthService(
		authservice.AuthServiceDeps{
			Repo:        users,
			Hasher:      hasher,
			IDGenerator: idGenerator,
			Clock:       clk,
			Log:         log,
		},
		authservice.AuthServiceConfig{
			JWTSecret: cfg.JWTSecret,
			TokenTTL:  cfg.TokenTTL,
		},
	)

	jobService := jobservice.NewJobService(jobservice.JobServiceDeps{
		Repo:        jobs,
		IDGenerator: idGenerator,
		Clock:       clk,
		Log:         log,
	})

	authHandler := authhttp.NewHandler(authService, cfg.RequestTimeout, log)
	jobHandler := jobhttp.NewHandler(jobService, cfg.JWTSecret, cfg.RequestTimeout, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", commonhttp.HealthHandler(log))
	mux.Handle("/api/sign_up", authHandler)
	mux.Handle("/api/sign_in", authHandler)
	mux.Handle("/api/jobs", jobHandler)
	mux.Handle("/api/jobs/", jobHandler)
	mux.Handle("/metrics", promhttp.Handler())

	handler := commonhttp.BuildBaseHandler("api", log, mux)

	serverConfig := srv.DefaultServerConfig(cfg.HTTPPort)
	server := srv.NewServer(serverConfig, handler)

	srv.StartWithGracefulShutdown(server, log, "api")
}
