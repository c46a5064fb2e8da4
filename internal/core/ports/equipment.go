package ports

import (
	"context"

	"github.com/cimco/maintenance-system/internal/core/domain"
)

// EquipmentRepository defines persistence for tracked machines.
type EquipmentRepository interface {
	List(ctx context.Context) ([]domain.Equipment, error)
	Create(ctx context.Context, eq *domain.Equipment) (*domain.Equipment, error)
	UpdateStatus(ctx context.Context, id string, status domain.EquipmentStatus) error
	Delete(ctx context.Context, id string) error
}

// EquipmentService exposes equipment operations to the transport layer.
type EquipmentService interface {
	List(ctx context.Context) ([]domain.Equipment, error)
	Create(ctx context.Context, name string, status domain.EquipmentStatus, health float64) (*domain.Equipment, error)
	UpdateStatus(ctx context.Context, id string, status domain.EquipmentStatus) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*domain.EquipmentStats, error)
}
