package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cimco/maintenance-system/internal/core/domain"
)

const logsCollection = "maintenance_logs"

type LogRepository struct {
	coll *mongo.Collection
}

func NewLogRepository(db *mongo.Database) *LogRepository {
	return &LogRepository{coll: db.Collection(logsCollection)}
}

type logDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	EquipmentID string             `bson:"equipment_id"`
	Action      string             `bson:"action"`
	Timestamp   int64              `bson:"timestamp"`
	SyncedAt    int64              `bson:"synced_at"`
}

func (r *LogRepository) Insert(ctx context.Context, log *domain.MaintenanceLog) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := logDoc{
		EquipmentID: log.EquipmentID,
		Action:      log.Action,
		Timestamp:   log.Timestamp,
		SyncedAt:    time.Now().Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert maintenance log: %w", err)
	}
	return nil
}

// ListByEquipment returns the synced history for one machine, newest first.
func (r *LogRepository) ListByEquipment(ctx context.Context, equipmentID string) ([]domain.MaintenanceLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx,
		bson.M{"equipment_id": equipmentID},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list maintenance logs: %w", err)
	}
	defer cur.Close(ctx)

	var docs []logDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode maintenance logs: %w", err)
	}

	logs := make([]domain.MaintenanceLog, 0, len(docs))
	for _, d := range docs {
		logs = append(logs, domain.MaintenanceLog{
			ID:          d.ID.Hex(),
			EquipmentID: d.EquipmentID,
			Action:      d.Action,
			Timestamp:   d.Timestamp,
		})
	}
	return logs, nil
}

// EnsureIndexes creates the equipment/timestamp query index.
func (r *LogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "equipment_id", Value: 1},
			{Key: "timestamp", Value: -1},
		},
	})
	return err
}
