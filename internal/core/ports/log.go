package ports

import (
	"context"

	"github.com/cimco/maintenance-system/internal/core/domain"
)

// MaintenanceLogInput is the DTO passed from the transport layer to LogService.
type MaintenanceLogInput struct {
	EquipmentID string
	Action      string
	Timestamp   int64
}

// LogRepository defines persistence for synced maintenance logs.
type LogRepository interface {
	Insert(ctx context.Context, log *domain.MaintenanceLog) error
	ListByEquipment(ctx context.Context, equipmentID string) ([]domain.MaintenanceLog, error)
}

// LogService processes maintenance-log entries synced from offline devices.
type LogService interface {
	Process(ctx context.Context, in MaintenanceLogInput) error
	ListByEquipment(ctx context.Context, equipmentID string) ([]domain.MaintenanceLog, error)
}
