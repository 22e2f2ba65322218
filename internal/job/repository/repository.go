package repository

import (
	"context"
	"errors"

	"github.com/mkravets/job-portal/backend/internal/job/domain"
)

var ErrJobNotFound = errors.New("job not found")

type Repository interface {
	List(ctx context.Context) ([]domain.Job, error)
	FindByID(ctx context.Context, id domain.ID) (domain.Job, error)
	Insert(ctx context.Context, job domain.Job) error
	Update(ctx context.Context, job domain.Job) error
	Delete(ctx context.Context, id domain.ID) error
}
