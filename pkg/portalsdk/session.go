package portalsdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is an authenticated client. The token is decoded once at
// construction, unverified, the same way a browser reads its stored
// token; the server remains the only party that checks the signature.
type Session struct {
	client *Client

	mu        sync.RWMutex
	token     string
	identity  Identity
	expiresAt time.Time
}

func newSession(client *Client, token string) (*Session, error) {
	identity, expiresAt, err := decodeIdentity(token)
	if err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}

	return &Session{
		client:    client,
		token:     token,
		identity:  identity,
		expiresAt: expiresAt,
	}, nil
}

// NewSessionFromToken rebuilds a session from a previously stored
// token, like a page reload picking the token back up from storage.
func NewSessionFromToken(client *Client, token string) (*Session, error) {
	return newSession(client, token)
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Identity() Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// Expired reports whether the token's expiry has passed at the given
// time. There is no refresh flow; an expired session must sign in
// again.
func (s *Session) Expired(now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return now.After(s.expiresAt)
}

func (s *Session) Jobs(ctx context.Context) ([]Job, error) {
	var jobs []Job
	if err := s.client.do(ctx, http.MethodGet, "/api/jobs", s.Token(), nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *Session) CreateJob(ctx context.Context, fields JobFields) (Job, error) {
	var resp jobResponse
	if err := s.client.do(ctx, http.MethodPost, "/api/jobs", s.Token(), fields, &resp); err != nil {
		return Job{}, err
	}
	return resp.Job, nil
}

func (s *Session) UpdateJob(ctx context.Context, id string, update JobUpdate) (Job, error) {
	var resp jobResponse
	if err := s.client.do(ctx, http.MethodPut, "/api/jobs/"+id, s.Token(), update.payload(), &resp); err != nil {
		return Job{}, err
	}
	return resp.Job, nil
}

func (s *Session) DeleteJob(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/api/jobs/"+id, s.Token(), nil, nil)
}

func decodeIdentity(token string) (Identity, time.Time, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Identity{}, time.Time{}, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, time.Time{}, errors.New("invalid claims type")
	}

	id, _ := claims["id"].(string)
	if id == "" {
		return Identity{}, time.Time{}, errors.New("missing id claim")
	}
	email, _ := claims["email"].(string)
	username, _ := claims["username"].(string)

	var expiresAt time.Time
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Time
	}

	return Identity{
		UserID:   id,
		Email:    email,
		Username: username,
	}, expiresAt, nil
}
