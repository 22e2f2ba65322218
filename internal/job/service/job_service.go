package service

import (
	"context"
	"errors"

	"github.com/mkravets/job-portal/backend/internal/common/clock"
	commoncrypto "github.com/mkravets/job-portal/backend/internal/common/crypto"
	commonerrors "github.com/mkravets/job-portal/backend/internal/common/errors"
	"github.com/mkravets/job-portal/backend/internal/common/logger"
	"github.com/mkravets/job-portal/backend/internal/job/domain"
	jobrepo "github.com/mkravets/job-portal/backend/internal/job/repository"
	"github.com/mkravets/job-portal/backend/internal/observability/metrics"
)

type JobService struct {
	repo        jobrepo.Repository
	idGenerator commoncrypto.IDGenerator
	clock       clock.Clock
	log         *logger.Logger
}

type JobServiceDeps struct {
	Repo        jobrepo.Repository
	IDGenerator commoncrypto.IDGenerator
	Clock       clock.Clock
	Log         *logger.Logger
}

func NewJobService(deps JobServiceDeps) *JobService {
	return &JobService{
		repo:        deps.Repo,
		idGenerator: deps.IDGenerator,
		clock:       deps.Clock,
		log:         deps.Log,
	}
}

type CreateInput struct {
	Title       string
	Company     string
	Description string
	Location    string
	Salary      string
	Category    string
}

// UpdateInput mirrors the wire semantics of the update endpoint. The
// four required fields fall back to the stored value when empty, so an
// empty string is indistinguishable from "not supplied". Salary and
// Category track JSON presence: Set false keeps, Set true with a nil
// pointer clears, Set true with a value replaces.
type UpdateInput struct {
	Title       string
	Company     string
	Description string
	Location    string
	Salary      *string
	SalarySet   bool
	Category    *string
	CategorySet bool
}

func (s *JobService) List(ctx context.Context) ([]domain.Job, error) {
	jobs, err := s.repo.List(ctx)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action": "list_jobs_failed",
		}).Errorf("list jobs failed: %v", err)
		return nil, commonerrors.ErrInternal.WithCause(err)
	}
	return jobs, nil
}

func (s *JobService) Create(ctx context.Context, userID string, input CreateInput) (domain.Job, error) {
	if input.Title == "" || input.Company == "" || input.Description == "" || input.Location == "" {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": userID,
			"action":  "create_job_validation_failed",
		}).Warn("create job failed: missing required fields")
		return domain.Job{}, ErrJobFieldsRequired
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": userID,
			"action":  "create_job_id_generation_failed",
		}).Errorf("create job failed: id generation error: %v", err)
		return domain.Job{}, commonerrors.ErrInternal.WithCause(err)
	}

	now := s.clock.Now()
	job := domain.Job{
		ID:          domain.ID(id),
		Title:       input.Title,
		Company:     input.Company,
		Description: input.Description,
		Location:    input.Location,
		Salary:      optional(input.Salary),
		Category:    optional(input.Category),
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, job); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": userID,
			"action":  "create_job_insert_failed",
		}).Errorf("create job failed: %v", err)
		return domain.Job{}, commonerrors.ErrInternal.WithCause(err)
	}

	metrics.JobsCreated.Inc()

	s.log.WithFields(ctx, logger.Fields{
		"user_id": userID,
		"job_id":  id,
		"action":  "create_job_success",
	}).Info("job created")

	return job, nil
}

func (s *JobService) Update(ctx context.Context, userID string, jobID domain.ID, input UpdateInput) (domain.Job, error) {
	job, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		return domain.Job{}, s.lookupError(ctx, userID, jobID, err, "update")
	}

	if job.CreatedBy != userID {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": userID,
			"job_id":  string(jobID),
			"owner":   job.CreatedBy,
			"action":  "update_job_forbidden",
		}).Warn("update job failed: not owner")
		return domain.Job{}, ErrNotJobOwnerEdit
	}

	if input.Title != "" {
		job.Title = input.Title
	}
	if input.Company != "" {
		job.Company = input.Company
	}
	if input.Description != "" {
		job.Description = input.Description
	}
	if input.Location != "" {
		job.Location = input.Location
	}
	if input.SalarySet {
		job.Salary = input.Salary
	}
	if input.CategorySet {
		job.Category = input.Category
	}
	job.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, job); err != nil {
		return domain.Job{}, s.lookupError(ctx, userID, jobID, err, "update")
	}

	metrics.JobsUpdated.Inc()

	s.log.WithFields(ctx, logger.Fields{
		"user_id": userID,
		"job_id":  string(jobID),
		"action":  "update_job_success",
	}).Info("job updated")

	return job, nil
}

func (s *JobService) Delete(ctx context.Context, userID string, jobID domain.ID) error {
	job, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		return s.lookupError(ctx, userID, jobID, err, "delete")
	}

	if job.CreatedBy != userID {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": userID,
			"job_id":  string(jobID),
			"owner":   job.CreatedBy,
			"action":  "delete_job_forbidden",
		}).Warn("delete job failed: not owner")
		return ErrNotJobOwnerDelete
	}

	if err := s.repo.Delete(ctx, jobID); err != nil {
		return s.lookupError(ctx, userID, jobID, err, "delete")
	}

	metrics.JobsDeleted.Inc()

	s.log.WithFields(ctx, logger.Fields{
		"user_id": userID,
		"job_id":  string(jobID),
		"action":  "delete_job_success",
	}).Info("job deleted")

	return nil
}

func (s *JobService) lookupError(ctx context.Context, userID string, jobID domain.ID, err error, op string) error {
	if errors.Is(err, jobrepo.ErrJobNotFound) {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": userID,
			"job_id":  string(jobID),
			"action":  op + "_job_not_found",
		}).Warnf("%s job failed: not found", op)
		return ErrJobNotFound
	}
	s.log.WithFields(ctx, logger.Fields{
		"user_id": userID,
		"job_id":  string(jobID),
		"action":  op + "_job_failed",
	}).Errorf("%s job failed: %v", op, err)
	return commonerrors.ErrInternal.WithCause(err)
}

// optional maps an empty string to null, matching how the create
// endpoint stores the two optional fields.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
