package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authhttp "github.com/mkravets/job-portal/backend/internal/auth/http"
	"github.com/mkravets/job-portal/backend/internal/common/logger"
	userdomain "github.com/mkravets/job-portal/backend/internal/user/domain"
	userrepo "github.com/mkravets/job-portal/backend/internal/user/repository"
)

type errorBody struct {
	Error string `json:"error"`
}

func newAuthHandler(t *testing.T) (http.Handler, *mockUserRepo) {
	t.Helper()
	svc, repo, _, _, _ := setupAuthService(t)
	log, _ := logger.New("", "test", "error")
	return authhttp.NewHandler(svc, 5*time.Second, log), repo
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthHTTP_SignUp_Created(t *testing.T) {
	h, _ := newAuthHandler(t)

	rec := postJSON(t, h, "/api/sign_up", map[string]string{
		"username": "alice",
		"email":    "alice@x.com",
		"password": "secret1",
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	var resp struct {
		Message string `json:"message"`
		User    struct {
			ID       string `json:"id"`
			Username string `json:"username"`
			Email    string `json:"email"`
		} `json:"user"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Message != "User registered successfully" {
		t.Errorf("unexpected message: %s", resp.Message)
	}
	if resp.User.Username != "alice" || resp.User.Email != "alice@x.com" || resp.User.ID == "" {
		t.Errorf("unexpected user: %+v", resp.User)
	}
}

func TestAuthHTTP_SignUp_NoPasswordHashInBody(t *testing.T) {
	h, _ := newAuthHandler(t)

	rec := postJSON(t, h, "/api/sign_up", map[string]string{
		"username": "alice",
		"email":    "alice@x.com",
		"password": "secret1",
	})

	var raw map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	user, _ := raw["user"].(map[string]any)
	for _, key := range []string{"password", "passwordHash", "password_hash"} {
		if _, found := user[key]; found {
			t.Errorf("response leaked %s", key)
		}
	}
}

func TestAuthHTTP_SignUp_InvalidJSON(t *testing.T) {
	h, _ := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/sign_up", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestAuthHTTP_SignUp_Conflict(t *testing.T) {
	h, repo := newAuthHandler(t)
	repo.createFunc = func(ctx context.Context, user userdomain.User) error {
		return userrepo.ErrEmailAlreadyExists
	}

	rec := postJSON(t, h, "/api/sign_up", map[string]string{
		"username": "alice",
		"email":    "alice@x.com",
		"password": "secret1",
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	var body errorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "User already exists with this email" {
		t.Errorf("unexpected error message: %s", body.Error)
	}
}

func TestAuthHTTP_SignUp_ShortPassword(t *testing.T) {
	h, _ := newAuthHandler(t)

	rec := postJSON(t, h, "/api/sign_up", map[string]string{
		"username": "alice",
		"email":    "alice@x.com",
		"password": "12345",
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	var body errorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "Password must be at least 6 characters" {
		t.Errorf("unexpected error message: %s", body.Error)
	}
}

func TestAuthHTTP_SignIn_InvalidCredentials(t *testing.T) {
	h, repo := newAuthHandler(t)
	repo.findByEmailFunc = func(ctx context.Context, email string) (userdomain.User, error) {
		return userdomain.User{}, userrepo.ErrUserNotFound
	}

	rec := postJSON(t, h, "/api/sign_in", map[string]string{
		"email":    "alice@x.com",
		"password": "secret1",
	})

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
	var body errorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "Invalid credentials" {
		t.Errorf("unexpected error message: %s", body.Error)
	}
}

func TestAuthHTTP_SignIn_Success(t *testing.T) {
	h, repo := newAuthHandler(t)
	repo.findByEmailFunc = func(ctx context.Context, email string) (userdomain.User, error) {
		return storedAlice(), nil
	}

	rec := postJSON(t, h, "/api/sign_in", map[string]string{
		"email":    "alice@x.com",
		"password": "secret1",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var resp struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Message != "Login successful" {
		t.Errorf("unexpected message: %s", resp.Message)
	}
	if resp.Token == "" {
		t.Error("expected token in response")
	}
}

func TestAuthHTTP_MethodNotAllowed(t *testing.T) {
	h, _ := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/sign_in", http.NoBody)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", rec.Code)
	}
}
