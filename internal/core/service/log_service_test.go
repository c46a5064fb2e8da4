package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cimco/maintenance-system/internal/core/domain"
	"github.com/cimco/maintenance-system/internal/core/ports"
)

type stubLogRepo struct {
	entries   []domain.MaintenanceLog
	insertErr error
}

func (r *stubLogRepo) Insert(_ context.Context, log *domain.MaintenanceLog) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.entries = append(r.entries, *log)
	return nil
}

func (r *stubLogRepo) ListByEquipment(_ context.Context, equipmentID string) ([]domain.MaintenanceLog, error) {
	var out []domain.MaintenanceLog
	for _, e := range r.entries {
		if e.EquipmentID == equipmentID {
			out = append(out, e)
		}
	}
	return out, nil
}

type stubLogDedup struct {
	seen     map[string]bool
	checkErr error
}

func newStubLogDedup() *stubLogDedup {
	return &stubLogDedup{seen: make(map[string]bool)}
}

func (d *stubLogDedup) key(equipmentID, action string, ts int64) string {
	return fmt.Sprintf("%s|%s|%d", equipmentID, action, ts)
}

func (d *stubLogDedup) IsDuplicate(_ context.Context, equipmentID, action string, ts int64) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	return d.seen[d.key(equipmentID, action, ts)], nil
}

func (d *stubLogDedup) Mark(_ context.Context, equipmentID, action string, ts int64) error {
	d.seen[d.key(equipmentID, action, ts)] = true
	return nil
}

func TestLogService_Process_PersistsEntry(t *testing.T) {
	repo := &stubLogRepo{}
	svc := NewLogService(repo, newStubLogDedup(), zerolog.Nop())

	in := ports.MaintenanceLogInput{EquipmentID: "eq1", Action: "greased bearings", Timestamp: 1700000000}
	if err := svc.Process(context.Background(), in); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(repo.entries))
	}
	if repo.entries[0].EquipmentID != "eq1" || repo.entries[0].Action != "greased bearings" {
		t.Fatalf("unexpected entry: %+v", repo.entries[0])
	}
}

func TestLogService_Process_SkipsDuplicates(t *testing.T) {
	repo := &stubLogRepo{}
	svc := NewLogService(repo, newStubLogDedup(), zerolog.Nop())

	in := ports.MaintenanceLogInput{EquipmentID: "eq1", Action: "belt replaced", Timestamp: 1700000000}
	if err := svc.Process(context.Background(), in); err != nil {
		t.Fatalf("first process failed: %v", err)
	}
	if err := svc.Process(context.Background(), in); err != nil {
		t.Fatalf("duplicate process should be a silent skip, got: %v", err)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("duplicate was persisted, got %d entries", len(repo.entries))
	}
}

func TestLogService_Process_DedupFailureIsNonFatal(t *testing.T) {
	repo := &stubLogRepo{}
	dedup := newStubLogDedup()
	dedup.checkErr = errors.New("redis down")
	svc := NewLogService(repo, dedup, zerolog.Nop())

	in := ports.MaintenanceLogInput{EquipmentID: "eq2", Action: "inspected", Timestamp: 1700000001}
	if err := svc.Process(context.Background(), in); err != nil {
		t.Fatalf("dedup failure must not fail processing: %v", err)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("entry not persisted despite dedup failure")
	}
}

func TestLogService_Process_InsertFailure(t *testing.T) {
	repo := &stubLogRepo{insertErr: errors.New("mongo down")}
	svc := NewLogService(repo, newStubLogDedup(), zerolog.Nop())

	in := ports.MaintenanceLogInput{EquipmentID: "eq3", Action: "oiled", Timestamp: 1700000002}
	if err := svc.Process(context.Background(), in); err == nil {
		t.Fatalf("expected insert error to propagate")
	}
}
