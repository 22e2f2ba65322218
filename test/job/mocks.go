package job

import (
	"context"

	jobdomain "github.com/mkravets/job-portal/backend/internal/job/domain"
	jobrepo "github.com/mkravets/job-portal/backend/internal/job/repository"
)

type mockJobRepo struct {
	listFunc     func(ctx context.Context) ([]jobdomain.Job, error)
	findByIDFunc func(ctx context.Context, id jobdomain.ID) (jobdomain.Job, error)
	insertFunc   func(ctx context.Context, job jobdomain.Job) error
	updateFunc   func(ctx context.Context, job jobdomain.Job) error
	deleteFunc   func(ctx context.Context, id jobdomain.ID) error
}

func (m *mockJobRepo) List(ctx context.Context) ([]jobdomain.Job, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockJobRepo) FindByID(ctx context.Context, id jobdomain.ID) (jobdomain.Job, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return jobdomain.Job{}, jobrepo.ErrJobNotFound
}

func (m *mockJobRepo) Insert(ctx context.Context, job jobdomain.Job) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, job)
	}
	return nil
}

func (m *mockJobRepo) Update(ctx context.Context, job jobdomain.Job) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, job)
	}
	return nil
}

func (m *mockJobRepo) Delete(ctx context.Context, id jobdomain.ID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockIDGenerator struct {
	newIDFunc func() (string, error)
}

func (m *mockIDGenerator) NewID() (string, error) {
	if m.newIDFunc != nil {
		return m.newIDFunc()
	}
	return "job-id", nil
}
