package domain

import "errors"

// EquipmentStatus represents the operational state of a machine.
type EquipmentStatus string

const (
	EquipmentActive      EquipmentStatus = "active"
	EquipmentMaintenance EquipmentStatus = "maintenance"
	EquipmentDown        EquipmentStatus = "down"
)

// Valid reports whether the status is one of the known values.
func (s EquipmentStatus) Valid() bool {
	return s == EquipmentActive || s == EquipmentMaintenance || s == EquipmentDown
}

var ErrEquipmentNotFound = errors.New("equipment not found")

// Equipment is a single tracked machine on the facility floor.
type Equipment struct {
	ID          string          `json:"id" bson:"_id,omitempty"`
	Name        string          `json:"name" bson:"name"`
	Status      EquipmentStatus `json:"status" bson:"status"`
	HealthScore float64         `json:"health_score" bson:"health_score"`
	CreatedAt   int64           `json:"created_at" bson:"created_at"`
}

// EquipmentStats is the aggregate view shown on the dashboard.
type EquipmentStats struct {
	TotalEquipment   int     `json:"total_equipment"`
	ActiveCount      int     `json:"active_count"`
	MaintenanceCount int     `json:"maintenance_count"`
	DownCount        int     `json:"down_count"`
	AverageHealth    float64 `json:"average_health"`
}
