package repository

import (
	"context"
	"sync"

	"github.com/mkravets/job-portal/backend/internal/job/domain"
)

// MemoryRepository stores jobs in insertion order, which is also the
// order List returns them in.
type MemoryRepository struct {
	mu    sync.RWMutex
	order []domain.ID
	jobs  map[domain.ID]domain.Job
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		jobs: make(map[domain.ID]domain.Job),
	}
}

func (r *MemoryRepository) List(ctx context.Context) ([]domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	jobs := make([]domain.Job, 0, len(r.order))
	for _, id := range r.order {
		jobs = append(jobs, r.jobs[id])
	}
	return jobs, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id domain.ID) (domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return domain.Job{}, ErrJobNotFound
	}
	return job, nil
}

func (r *MemoryRepository) Insert(ctx context.Context, job domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.jobs[job.ID]; !exists {
		r.order = append(r.order, job.ID)
	}
	r.jobs[job.ID] = job
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, job domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.jobs[job.ID]; !exists {
		return ErrJobNotFound
	}
	r.jobs[job.ID] = job
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id domain.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.jobs[id]; !exists {
		return ErrJobNotFound
	}
	delete(r.jobs, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
