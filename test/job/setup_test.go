package job

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mkravets/job-portal/backend/internal/common/clock"
	"github.com/mkravets/job-portal/backend/internal/common/logger"
	jobservice "github.com/mkravets/job-portal/backend/internal/job/service"
)

const testJWTSecret = "test-secret-for-job-tests"

func setupJobService(t *testing.T) (*jobservice.JobService, *mockJobRepo, *mockIDGenerator, *clock.MockClock) {
	t.Helper()

	repo := &mockJobRepo{}
	idGenerator := &mockIDGenerator{}
	mockClock := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	log, err := logger.New("", "test", "error")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	svc := jobservice.NewJobService(jobservice.JobServiceDeps{
		Repo:        repo,
		IDGenerator: idGenerator,
		Clock:       mockClock,
		Log:         log,
	})

	return svc, repo, idGenerator, mockClock
}

// signToken mints a bearer token the way the auth service does, for
// driving the protected routes in handler tests.
func signToken(t *testing.T, userID, email, username string) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"id":       userID,
		"email":    email,
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func strPtr(s string) *string {
	return &s
}
