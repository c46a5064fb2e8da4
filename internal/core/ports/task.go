package ports

import (
	"context"

	"github.com/cimco/maintenance-system/internal/core/domain"
)

// TaskRepository defines persistence for maintenance tasks.
type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Find(ctx context.Context, id string) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) error
	Delete(ctx context.Context, id string) error
}

// TaskService exposes task operations to the transport layer.
type TaskService interface {
	List(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, description string, priority int, category string) (*domain.Task, error)
	Toggle(ctx context.Context, id string) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
