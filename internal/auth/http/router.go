package http

import (
	"context"
	"net/http"
	"time"

	"github.com/mkravets/job-portal/backend/internal/auth/service"
	commonhttp "github.com/mkravets/job-portal/backend/internal/common/http"
	"github.com/mkravets/job-portal/backend/internal/common/logger"
	userdomain "github.com/mkravets/job-portal/backend/internal/user/domain"
)

type signUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpResponse struct {
	Message string                `json:"message"`
	User    userdomain.PublicUser `json:"user"`
}

type signInResponse struct {
	Message string                `json:"message"`
	Token   string                `json:"token"`
	User    userdomain.PublicUser `json:"user"`
}

type Handler struct {
	auth    *service.AuthService
	log     *logger.Logger
	timeout time.Duration
}

func NewHandler(auth *service.AuthService, timeout time.Duration, log *logger.Logger) http.Handler {
	h := &Handler{auth: auth, log: log, timeout: timeout}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/sign_up", h.signUp)
	mux.HandleFunc("/api/sign_in", h.signIn)
	return mux
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req signUpRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("sign_up failed: invalid json: %v", err)
		commonhttp.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	user, err := h.auth.Register(ctx, service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		commonhttp.WriteDomainError(w, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated, signUpResponse{
		Message: "User registered successfully",
		User:    user,
	})
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req signInRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("sign_in failed: invalid json: %v", err)
		commonhttp.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.auth.Login(ctx, service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		commonhttp.WriteDomainError(w, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, signInResponse{
		Message: "Login successful",
		Token:   result.Token,
		User:    result.User,
	})
}
