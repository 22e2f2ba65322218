package jwtverify

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	commonhttp "github.com/mkravets/job-portal/backend/internal/common/http"
	"github.com/mkravets/job-portal/backend/internal/common/logger"
)

// Claims is the identity carried by an access token.
type Claims struct {
	UserID   string
	Email    string
	Username string
}

type contextKey string

const claimsKey contextKey = "jwt_claims"

// Middleware rejects requests without a valid bearer token. A missing
// header answers 401, a bad or expired token answers 403.
func Middleware(secret string, log *logger.Logger) func(next http.Handler) http.Handler {
	secretBytes := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("Authorization")
			if raw == "" || !strings.HasPrefix(raw, "Bearer ") {
				log.Warnf("jwt auth failed path=%s: missing authorization header", r.URL.Path)
				commonhttp.WriteError(w, http.StatusUnauthorized, "Access token required")
				return
			}

			tokenString := strings.TrimPrefix(raw, "Bearer ")
			claims, err := ParseToken(tokenString, secretBytes)
			if err != nil {
				log.Warnf("jwt auth failed path=%s: %v", r.URL.Path, err)
				commonhttp.WriteError(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func FromContext(ctx context.Context) (Claims, bool) {
	val := ctx.Value(claimsKey)
	claims, ok := val.(Claims)
	return claims, ok
}

// ParseToken verifies signature and expiry against the current time.
func ParseToken(tokenString string, secret []byte) (Claims, error) {
	return ParseTokenAt(tokenString, secret, time.Now())
}

// ParseTokenAt is the pure form of verification: token + secret + time
// in, claims or an error out.
func ParseTokenAt(tokenString string, secret []byte, now time.Time) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	parsed, err := parser.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		if err == nil {
			err = errors.New("token is not valid")
		}
		return Claims{}, err
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("invalid claims type")
	}

	id, _ := mapClaims["id"].(string)
	email, _ := mapClaims["email"].(string)
	username, _ := mapClaims["username"].(string)
	if id == "" {
		return Claims{}, errors.New("missing id claim")
	}

	return Claims{
		UserID:   id,
		Email:    email,
		Username: username,
	}, nil
}
