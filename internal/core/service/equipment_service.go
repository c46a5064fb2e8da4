package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cimco/maintenance-system/internal/core/domain"
	"github.com/cimco/maintenance-system/internal/core/ports"
)

type EquipmentService struct {
	repo   ports.EquipmentRepository
	logger zerolog.Logger
}

func NewEquipmentService(repo ports.EquipmentRepository, logger zerolog.Logger) *EquipmentService {
	return &EquipmentService{repo: repo, logger: logger}
}

func (s *EquipmentService) List(ctx context.Context) ([]domain.Equipment, error) {
	return s.repo.List(ctx)
}

// Create registers a new machine. Health scores are clamped to [0, 100].
func (s *EquipmentService) Create(ctx context.Context, name string, status domain.EquipmentStatus, health float64) (*domain.Equipment, error) {
	if health < 0 {
		health = 0
	} else if health > 100 {
		health = 100
	}

	eq := &domain.Equipment{
		Name:        name,
		Status:      status,
		HealthScore: health,
		CreatedAt:   time.Now().Unix(),
	}
	created, err := s.repo.Create(ctx, eq)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("equipment", created.Name).Str("status", string(created.Status)).Msg("equipment created")
	return created, nil
}

func (s *EquipmentService) UpdateStatus(ctx context.Context, id string, status domain.EquipmentStatus) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *EquipmentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Stats aggregates the dashboard view from the full equipment list.
func (s *EquipmentService) Stats(ctx context.Context) (*domain.EquipmentStats, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.EquipmentStats{TotalEquipment: len(list)}
	var healthSum float64
	for _, eq := range list {
		switch eq.Status {
		case domain.EquipmentActive:
			stats.ActiveCount++
		case domain.EquipmentMaintenance:
			stats.MaintenanceCount++
		case domain.EquipmentDown:
			stats.DownCount++
		}
		healthSum += eq.HealthScore
	}
	if len(list) > 0 {
		stats.AverageHealth = healthSum / float64(len(list))
	}
	return stats, nil
}
