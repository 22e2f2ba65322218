package auth

import (
	"testing"
	"time"

	"github.com/mkravets/job-portal/backend/internal/auth/service"
	"github.com/mkravets/job-portal/backend/internal/common/clock"
	"github.com/mkravets/job-portal/backend/internal/common/constants"
	"github.com/mkravets/job-portal/backend/internal/common/logger"
)

const testJWTSecret = "test-secret-for-auth-tests"

func setupAuthService(t *testing.T) (*service.AuthService, *mockUserRepo, *mockHasher, *mockIDGenerator, *clock.MockClock) {
	t.Helper()
	return setupAuthServiceWithSecret(t, testJWTSecret)
}

func setupAuthServiceWithSecret(t *testing.T, secret string) (*service.AuthService, *mockUserRepo, *mockHasher, *mockIDGenerator, *clock.MockClock) {
	t.Helper()

	repo := &mockUserRepo{}
	hasher := &mockHasher{}
	idGenerator := &mockIDGenerator{}
	mockClock := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	log, err := logger.New("", "test", "error")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	svc := service.NewAuthService(
		service.AuthServiceDeps{
			Repo:        repo,
			Hasher:      hasher,
			IDGenerator: idGenerator,
			Clock:       mockClock,
			Log:         log,
		},
		service.AuthServiceConfig{
			JWTSecret: secret,
			TokenTTL:  constants.DefaultTokenTTL,
		},
	)

	return svc, repo, hasher, idGenerator, mockClock
}
