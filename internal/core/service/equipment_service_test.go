package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cimco/maintenance-system/internal/core/domain"
)

type stubEquipmentRepo struct {
	items  []domain.Equipment
	nextID int
}

func (r *stubEquipmentRepo) List(_ context.Context) ([]domain.Equipment, error) {
	return r.items, nil
}

func (r *stubEquipmentRepo) Create(_ context.Context, eq *domain.Equipment) (*domain.Equipment, error) {
	r.nextID++
	created := *eq
	created.ID = string(rune('a' + r.nextID))
	r.items = append(r.items, created)
	return &created, nil
}

func (r *stubEquipmentRepo) UpdateStatus(_ context.Context, id string, status domain.EquipmentStatus) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Status = status
			return nil
		}
	}
	return domain.ErrEquipmentNotFound
}

func (r *stubEquipmentRepo) Delete(_ context.Context, id string) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrEquipmentNotFound
}

func TestEquipmentService_Create_ClampsHealth(t *testing.T) {
	repo := &stubEquipmentRepo{}
	svc := NewEquipmentService(repo, zerolog.Nop())

	eq, err := svc.Create(context.Background(), "Treadmill 4", domain.EquipmentActive, 150)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if eq.HealthScore != 100 {
		t.Fatalf("expected health clamped to 100, got %v", eq.HealthScore)
	}

	eq, err = svc.Create(context.Background(), "Rower 1", domain.EquipmentDown, -5)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if eq.HealthScore != 0 {
		t.Fatalf("expected health clamped to 0, got %v", eq.HealthScore)
	}
}

func TestEquipmentService_Stats(t *testing.T) {
	repo := &stubEquipmentRepo{items: []domain.Equipment{
		{ID: "1", Name: "Treadmill", Status: domain.EquipmentActive, HealthScore: 90},
		{ID: "2", Name: "Bike", Status: domain.EquipmentActive, HealthScore: 70},
		{ID: "3", Name: "Rower", Status: domain.EquipmentMaintenance, HealthScore: 50},
		{ID: "4", Name: "Press", Status: domain.EquipmentDown, HealthScore: 10},
	}}
	svc := NewEquipmentService(repo, zerolog.Nop())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalEquipment != 4 || stats.ActiveCount != 2 || stats.MaintenanceCount != 1 || stats.DownCount != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.AverageHealth != 55 {
		t.Fatalf("expected average health 55, got %v", stats.AverageHealth)
	}
}

func TestEquipmentService_Stats_Empty(t *testing.T) {
	svc := NewEquipmentService(&stubEquipmentRepo{}, zerolog.Nop())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalEquipment != 0 || stats.AverageHealth != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}
