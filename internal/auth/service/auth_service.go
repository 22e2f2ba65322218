package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mkravets/job-portal/backend/internal/common/clock"
	commoncrypto "github.com/mkravets/job-portal/backend/internal/common/crypto"
	commonerrors "github.com/mkravets/job-portal/backend/internal/common/errors"
	"github.com/mkravets/job-portal/backend/internal/common/jwtverify"
	"github.com/mkravets/job-portal/backend/internal/common/logger"
	"github.com/mkravets/job-portal/backend/internal/observability/metrics"
	userdomain "github.com/mkravets/job-portal/backend/internal/user/domain"
	userrepo "github.com/mkravets/job-portal/backend/internal/user/repository"
)

type AuthService struct {
	repo        userrepo.Repository
	hasher      commoncrypto.PasswordHasher
	idGenerator commoncrypto.IDGenerator
	clock       clock.Clock
	log         *logger.Logger
	jwtSecret   []byte
	tokenTTL    time.Duration
}

type AuthServiceDeps struct {
	Repo        userrepo.Repository
	Hasher      commoncrypto.PasswordHasher
	IDGenerator commoncrypto.IDGenerator
	Clock       clock.Clock
	Log         *logger.Logger
}

type AuthServiceConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthService(deps AuthServiceDeps, cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		repo:        deps.Repo,
		hasher:      deps.Hasher,
		idGenerator: deps.IDGenerator,
		clock:       deps.Clock,
		log:         deps.Log,
		jwtSecret:   []byte(cfg.JWTSecret),
		tokenTTL:    cfg.TokenTTL,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  userdomain.PublicUser
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (userdomain.PublicUser, error) {
	s.log.WithFields(ctx, logger.Fields{
		"email":  input.Email,
		"action": "register_attempt",
	}).Info("register attempt")

	if err := validateRegister(input.Username, input.Email, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "register_validation_failed",
		}).Warnf("register validation failed: %v", err)
		return userdomain.PublicUser{}, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "register_hash_failed",
		}).Errorf("register failed: password hash error: %v", err)
		return userdomain.PublicUser{}, commonerrors.ErrInternal.WithCause(err)
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "register_id_generation_failed",
		}).Errorf("register failed: id generation error: %v", err)
		return userdomain.PublicUser{}, commonerrors.ErrInternal.WithCause(err)
	}

	user := userdomain.User{
		ID:           userdomain.ID(id),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, userrepo.ErrEmailAlreadyExists) {
			s.log.WithFields(ctx, logger.Fields{
				"email":  input.Email,
				"action": "register_email_exists",
			}).Warn("register failed: email already exists")
			return userdomain.PublicUser{}, ErrEmailTaken
		}
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "register_create_failed",
		}).Errorf("register failed: %v", err)
		return userdomain.PublicUser{}, commonerrors.ErrInternal.WithCause(err)
	}

	metrics.UsersRegistered.Inc()

	s.log.WithFields(ctx, logger.Fields{
		"email":   user.Email,
		"user_id": string(user.ID),
		"action":  "register_success",
	}).Info("register success")

	return user.Public(), nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (LoginResult, error) {
	s.log.WithFields(ctx, logger.Fields{
		"email":  input.Email,
		"action": "login_attempt",
	}).Info("login attempt")

	if err := validateLogin(input.Email, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "login_validation_failed",
		}).Warnf("login validation failed: %v", err)
		return LoginResult{}, err
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"email":  input.Email,
				"action": "login_user_not_found",
			}).Warn("login failed: not found")
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return LoginResult{}, ErrInvalidCredentials
		}
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "login_fetch_failed",
		}).Errorf("login failed: %v", err)
		return LoginResult{}, commonerrors.ErrInternal.WithCause(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "login_invalid_password",
		}).Warn("login failed: invalid password")
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.issueAccessToken(user)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":   input.Email,
			"user_id": string(user.ID),
			"action":  "login_token_issue_failed",
		}).Errorf("login failed: token issue error: %v", err)
		return LoginResult{}, commonerrors.ErrInternal.WithCause(err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	s.log.WithFields(ctx, logger.Fields{
		"email":   user.Email,
		"user_id": string(user.ID),
		"action":  "login_success",
	}).Info("login success")

	return LoginResult{Token: token, User: user.Public()}, nil
}

// Verify checks the signature and expiry of a bearer token and returns
// the identity it encodes. It touches no state.
func (s *AuthService) Verify(token string) (jwtverify.Claims, error) {
	return jwtverify.ParseTokenAt(token, s.jwtSecret, s.clock.Now())
}

func (s *AuthService) issueAccessToken(user userdomain.User) (string, error) {
	now := s.clock.Now()
	claims := jwt.MapClaims{
		"id":       string(user.ID),
		"email":    user.Email,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := t.SignedString(s.jwtSecret)
	if err != nil {
		return "", err
	}

	metrics.TokensIssued.Inc()
	return tokenString, nil
}
