package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cimco/maintenance-system/internal/core/domain"
	"github.com/cimco/maintenance-system/internal/core/ports"
)

type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) Create(ctx context.Context, description string, priority int, category string) (*domain.Task, error) {
	task := &domain.Task{
		Description: description,
		Priority:    priority,
		Category:    category,
		Status:      domain.TaskPending,
		CreatedAt:   time.Now().Unix(),
	}
	created, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("task_id", created.ID).Int("priority", created.Priority).Msg("task created")
	return created, nil
}

// Toggle flips the task between pending and completed and returns the
// updated task.
func (s *TaskService) Toggle(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Toggle()
	if err := s.repo.UpdateStatus(ctx, id, task.Status); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
