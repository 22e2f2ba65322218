package jwtverify

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("jwtverify-test-secret")

func signTestToken(t *testing.T, secret []byte, issued time.Time, ttl time.Duration, method jwt.SigningMethod) string {
	t.Helper()

	claims := jwt.MapClaims{
		"id":       "user-1",
		"email":    "a@x.com",
		"username": "alice",
		"iat":      issued.Unix(),
		"exp":      issued.Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func TestParseTokenAt_Valid(t *testing.T) {
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	token := signTestToken(t, testSecret, issued, 24*time.Hour, jwt.SigningMethodHS256)

	claims, err := ParseTokenAt(token, testSecret, issued.Add(time.Hour))
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "a@x.com" || claims.Username != "alice" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestParseTokenAt_Expired(t *testing.T) {
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	token := signTestToken(t, testSecret, issued, 24*time.Hour, jwt.SigningMethodHS256)

	if _, err := ParseTokenAt(token, testSecret, issued.Add(25*time.Hour)); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestParseTokenAt_WrongSecret(t *testing.T) {
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	token := signTestToken(t, []byte("other-secret"), issued, 24*time.Hour, jwt.SigningMethodHS256)

	if _, err := ParseTokenAt(token, testSecret, issued.Add(time.Hour)); err == nil {
		t.Error("expected token with wrong signature to be rejected")
	}
}

func TestParseTokenAt_RejectsNonHS256(t *testing.T) {
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	token := signTestToken(t, testSecret, issued, 24*time.Hour, jwt.SigningMethodHS512)

	if _, err := ParseTokenAt(token, testSecret, issued.Add(time.Hour)); err == nil {
		t.Error("expected non-HS256 token to be rejected")
	}
}

func TestParseTokenAt_MissingIDClaim(t *testing.T) {
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	claims := jwt.MapClaims{
		"email": "a@x.com",
		"exp":   issued.Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseTokenAt(token, testSecret, issued); err == nil {
		t.Error("expected token without id claim to be rejected")
	}
}
