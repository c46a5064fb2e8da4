package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cimco/maintenance-system/internal/core/domain"
)

type stubTaskRepo struct {
	tasks   map[string]domain.Task
	nextID  int
	deleted []string
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]domain.Task), nextID: 1}
}

func (r *stubTaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	out := make([]domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (r *stubTaskRepo) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	created := *task
	created.ID = string(rune('a' + r.nextID))
	r.nextID++
	r.tasks[created.ID] = created
	return &created, nil
}

func (r *stubTaskRepo) Find(ctx context.Context, id string) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	copy := t
	return &copy, nil
}

func (r *stubTaskRepo) UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	t, ok := r.tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	t.Status = status
	r.tasks[id] = t
	return nil
}

func (r *stubTaskRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func TestTaskService_Create_DefaultsPending(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, zerolog.Nop())

	task, err := svc.Create(context.Background(), "replace belt", 3, "mechanical")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Status != domain.TaskPending {
		t.Fatalf("expected pending, got %s", task.Status)
	}
	if task.CreatedAt == 0 {
		t.Fatal("expected created_at to be set")
	}
}

func TestTaskService_Toggle(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), "lubricate spindle", 2, "mechanical")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	toggled, err := svc.Toggle(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if toggled.Status != domain.TaskCompleted {
		t.Fatalf("expected completed, got %s", toggled.Status)
	}

	back, err := svc.Toggle(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if back.Status != domain.TaskPending {
		t.Fatalf("expected pending, got %s", back.Status)
	}
}

func TestTaskService_Toggle_NotFound(t *testing.T) {
	svc := NewTaskService(newStubTaskRepo(), zerolog.Nop())

	if _, err := svc.Toggle(context.Background(), "missing"); err != domain.ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskService_Delete(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), "inspect coolant", 1, "fluids")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != created.ID {
		t.Fatalf("expected delete of %s, got %v", created.ID, repo.deleted)
	}
}
