package domain

// MaintenanceLog is a single action recorded against a piece of equipment.
// Logs originate on devices that may be offline for long stretches and are
// synced in batches once connectivity returns, so the same entry can arrive
// more than once.
type MaintenanceLog struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	EquipmentID string `json:"equipment_id" bson:"equipment_id"`
	Action      string `json:"action" bson:"action"`
	Timestamp   int64  `json:"timestamp" bson:"timestamp"`
}
