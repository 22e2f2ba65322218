package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	commonhttp "github.com/mkravets/job-portal/backend/internal/common/http"
	"github.com/mkravets/job-portal/backend/internal/common/jwtverify"
	"github.com/mkravets/job-portal/backend/internal/common/logger"
	"github.com/mkravets/job-portal/backend/internal/job/domain"
	"github.com/mkravets/job-portal/backend/internal/job/service"
)

type createJobRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	Category    string `json:"category"`
}

// updateJobRequest keeps salary and category as raw JSON so a key set
// to null can be told apart from a key that is absent.
type updateJobRequest struct {
	Title       string          `json:"title"`
	Company     string          `json:"company"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Salary      json.RawMessage `json:"salary"`
	Category    json.RawMessage `json:"category"`
}

type jobResponse struct {
	Message string     `json:"message"`
	Job     domain.Job `json:"job"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	jobs    *service.JobService
	log     *logger.Logger
	timeout time.Duration
}

// NewHandler mounts the job CRUD routes behind the bearer-token
// middleware.
func NewHandler(jobs *service.JobService, jwtSecret string, timeout time.Duration, log *logger.Logger) http.Handler {
	h := &Handler{jobs: jobs, log: log, timeout: timeout}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/jobs", h.collection)
	mux.HandleFunc("/api/jobs/", h.item)
	return jwtverify.Middleware(jwtSecret, log)(mux)
}

func (h *Handler) collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) item(w http.ResponseWriter, r *http.Request) {
	id, ok := jobIDFromPath(r.URL.Path)
	if !ok {
		commonhttp.WriteError(w, http.StatusNotFound, "Job not found")
		return
	}

	switch r.Method {
	case http.MethodPut:
		h.update(w, r, domain.ID(id))
	case http.MethodDelete:
		h.delete(w, r, domain.ID(id))
	default:
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	jobs, err := h.jobs.List(ctx)
	if err != nil {
		commonhttp.WriteDomainError(w, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, jobs)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	claims, ok := jwtverify.FromContext(r.Context())
	if !ok {
		commonhttp.WriteError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	var req createJobRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("create job failed: invalid json: %v", err)
		commonhttp.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	job, err := h.jobs.Create(ctx, claims.UserID, service.CreateInput{
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		Location:    req.Location,
		Salary:      req.Salary,
		Category:    req.Category,
	})
	if err != nil {
		commonhttp.WriteDomainError(w, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated, jobResponse{
		Message: "Job created successfully",
		Job:     job,
	})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, id domain.ID) {
	claims, ok := jwtverify.FromContext(r.Context())
	if !ok {
		commonhttp.WriteError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	var req updateJobRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("update job failed: invalid json: %v", err)
		commonhttp.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := service.UpdateInput{
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		Location:    req.Location,
	}

	var err error
	input.Salary, input.SalarySet, err = optionalField(req.Salary)
	if err != nil {
		commonhttp.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	input.Category, input.CategorySet, err = optionalField(req.Category)
	if err != nil {
		commonhttp.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	job, err := h.jobs.Update(ctx, claims.UserID, id, input)
	if err != nil {
		commonhttp.WriteDomainError(w, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, jobResponse{
		Message: "Job updated successfully",
		Job:     job,
	})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, id domain.ID) {
	claims, ok := jwtverify.FromContext(r.Context())
	if !ok {
		commonhttp.WriteError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.jobs.Delete(ctx, claims.UserID, id); err != nil {
		commonhttp.WriteDomainError(w, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, messageResponse{
		Message: "Job deleted successfully",
	})
}

func jobIDFromPath(path string) (string, bool) {
	remaining := strings.TrimPrefix(path, "/api/jobs/")
	if remaining == "" || strings.Contains(remaining, "/") {
		return "", false
	}
	return remaining, true
}

// optionalField decodes a nullable string field: absent keeps the
// stored value, explicit null clears it, a value replaces it.
func optionalField(raw json.RawMessage) (*string, bool, error) {
	if len(raw) == 0 {
		return nil, false, nil
	}
	if string(raw) == "null" {
		return nil, true, nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false, err
	}
	return &v, true, nil
}
