package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cimco/maintenance-system/internal/core/domain"
)

const equipmentCollection = "equipment"

type EquipmentRepository struct {
	coll *mongo.Collection
}

func NewEquipmentRepository(db *mongo.Database) *EquipmentRepository {
	return &EquipmentRepository{coll: db.Collection(equipmentCollection)}
}

type equipmentDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Status      string             `bson:"status"`
	HealthScore float64            `bson:"health_score"`
	CreatedAt   int64              `bson:"created_at"`
}

func (d equipmentDoc) toDomain() domain.Equipment {
	return domain.Equipment{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Status:      domain.EquipmentStatus(d.Status),
		HealthScore: d.HealthScore,
		CreatedAt:   d.CreatedAt,
	}
}

func (r *EquipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer cur.Close(ctx)

	var docs []equipmentDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode equipment: %w", err)
	}

	list := make([]domain.Equipment, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.toDomain())
	}
	return list, nil
}

func (r *EquipmentRepository) Create(ctx context.Context, eq *domain.Equipment) (*domain.Equipment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := equipmentDoc{
		Name:        eq.Name,
		Status:      string(eq.Status),
		HealthScore: eq.HealthScore,
		CreatedAt:   eq.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert equipment: %w", err)
	}

	created := *eq
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *EquipmentRepository) UpdateStatus(ctx context.Context, id string, status domain.EquipmentStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEquipmentNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": string(status)}},
	)
	if err != nil {
		return fmt.Errorf("update equipment status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEquipmentNotFound
	}
	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEquipmentNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete equipment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEquipmentNotFound
	}
	return nil
}
