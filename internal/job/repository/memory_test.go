package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mkravets/job-portal/backend/internal/job/domain"
)

func TestMemoryRepository_ListInsertionOrder(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		job := domain.Job{ID: domain.ID(fmt.Sprintf("job-%d", i))}
		if err := repo.Insert(ctx, job); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	jobs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 5 {
		t.Fatalf("expected 5 jobs, got %d", len(jobs))
	}
	for i, job := range jobs {
		want := domain.ID(fmt.Sprintf("job-%d", i))
		if job.ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, job.ID)
		}
	}
}

func TestMemoryRepository_DeletePreservesOrder(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for _, id := range []domain.ID{"a", "b", "c"} {
		if err := repo.Insert(ctx, domain.Job{ID: id}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	if err := repo.Delete(ctx, "b"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	jobs, _ := repo.List(ctx)
	if len(jobs) != 2 || jobs[0].ID != "a" || jobs[1].ID != "c" {
		t.Errorf("unexpected order after delete: %+v", jobs)
	}
}

func TestMemoryRepository_Misses(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if _, err := repo.FindByID(ctx, "missing"); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("expected ErrJobNotFound, got %v", err)
	}
	if err := repo.Update(ctx, domain.Job{ID: "missing"}); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("expected ErrJobNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, "missing"); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("expected ErrJobNotFound, got %v", err)
	}
}
