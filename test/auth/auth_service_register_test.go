package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/mkravets/job-portal/backend/internal/auth/service"
	userdomain "github.com/mkravets/job-portal/backend/internal/user/domain"
	userrepo "github.com/mkravets/job-portal/backend/internal/user/repository"
)

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo, hasher, idGenerator, mockClock := setupAuthService(t)

	userID := "user-123"
	hashedPassword := "hashed_secret1"

	idGenerator.newIDFunc = func() (string, error) {
		return userID, nil
	}
	hasher.hashFunc = func(p string) (string, error) {
		if p != "secret1" {
			t.Errorf("expected password secret1, got %s", p)
		}
		return hashedPassword, nil
	}

	var stored userdomain.User
	repo.createFunc = func(ctx context.Context, user userdomain.User) error {
		stored = user
		return nil
	}

	user, err := svc.Register(context.Background(), service.RegisterInput{
		Username: "alice",
		Email:    "alice@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if user.ID != userdomain.ID(userID) {
		t.Errorf("expected id %s, got %s", userID, user.ID)
	}
	if user.Username != "alice" || user.Email != "alice@x.com" {
		t.Errorf("unexpected public user: %+v", user)
	}

	if stored.PasswordHash != hashedPassword {
		t.Errorf("expected stored hash %s, got %s", hashedPassword, stored.PasswordHash)
	}
	if !stored.CreatedAt.Equal(mockClock.Now()) {
		t.Errorf("expected createdAt %v, got %v", mockClock.Now(), stored.CreatedAt)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _, _, _, _ := setupAuthService(t)

	testCases := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{"missing username", "", "alice@x.com", "secret1", service.ErrAllFieldsRequired},
		{"missing email", "alice", "", "secret1", service.ErrAllFieldsRequired},
		{"missing password", "alice", "alice@x.com", "", service.ErrAllFieldsRequired},
		{"short password", "alice", "alice@x.com", "12345", service.ErrPasswordTooShort},
		{"six char password ok", "alice", "alice@x.com", "123456", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), service.RegisterInput{
				Username: tc.username,
				Email:    tc.email,
				Password: tc.password,
			})
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, repo, _, _, _ := setupAuthService(t)

	repo.createFunc = func(ctx context.Context, user userdomain.User) error {
		return userrepo.ErrEmailAlreadyExists
	}

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Username: "alice",
		Email:    "alice@x.com",
		Password: "secret1",
	})
	if !errors.Is(err, service.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Register_RepositoryError(t *testing.T) {
	svc, repo, _, _, _ := setupAuthService(t)

	repo.createFunc = func(ctx context.Context, user userdomain.User) error {
		return errors.New("boom")
	}

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Username: "alice",
		Email:    "alice@x.com",
		Password: "secret1",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, service.ErrEmailTaken) {
		t.Error("unexpected conflict error for generic failure")
	}
}
