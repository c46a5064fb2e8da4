package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cimco/maintenance-system/internal/core/domain"
	"github.com/cimco/maintenance-system/internal/core/ports"
)

// LogDedupChecker abstracts the idempotency store (Redis) for log entries.
// Offline devices replay their whole journal on reconnect, so duplicates are
// the norm rather than the exception.
type LogDedupChecker interface {
	IsDuplicate(ctx context.Context, equipmentID, action string, ts int64) (bool, error)
	Mark(ctx context.Context, equipmentID, action string, ts int64) error
}

type logService struct {
	logs   ports.LogRepository
	dedup  LogDedupChecker
	logger zerolog.Logger
}

// NewLogService returns a LogService implementation.
func NewLogService(logs ports.LogRepository, dedup LogDedupChecker, logger zerolog.Logger) ports.LogService {
	return &logService{logs: logs, dedup: dedup, logger: logger}
}

// Process deduplicates and persists a single synced log entry.
func (s *logService) Process(ctx context.Context, in ports.MaintenanceLogInput) error {
	isDup, err := s.dedup.IsDuplicate(ctx, in.EquipmentID, in.Action, in.Timestamp)
	if err != nil {
		s.logger.Warn().Err(err).Str("equipment_id", in.EquipmentID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.logger.Debug().Str("equipment_id", in.EquipmentID).Str("action", in.Action).Msg("duplicate log entry skipped")
		return nil
	}

	// Mark before writing so a crashed retry does not double-insert.
	if markErr := s.dedup.Mark(ctx, in.EquipmentID, in.Action, in.Timestamp); markErr != nil {
		s.logger.Warn().Err(markErr).Str("equipment_id", in.EquipmentID).Msg("failed to set dedup key")
	}

	entry := &domain.MaintenanceLog{
		EquipmentID: in.EquipmentID,
		Action:      in.Action,
		Timestamp:   in.Timestamp,
	}
	if err := s.logs.Insert(ctx, entry); err != nil {
		return fmt.Errorf("process log: %w", err)
	}

	s.logger.Info().Str("equipment_id", in.EquipmentID).Str("action", in.Action).Msg("log entry synced")
	return nil
}

func (s *logService) ListByEquipment(ctx context.Context, equipmentID string) ([]domain.MaintenanceLog, error) {
	return s.logs.ListByEquipment(ctx, equipmentID)
}
