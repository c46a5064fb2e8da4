package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cimco/maintenance-system/internal/core/domain"
)

const ordersCollection = "incoming_orders"

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

type orderDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	PartID           string             `bson:"part_id,omitempty"`
	PartName         string             `bson:"part_name,omitempty"`
	OrderNumber      string             `bson:"order_number,omitempty"`
	TrackingNumber   string             `bson:"tracking_number,omitempty"`
	Supplier         string             `bson:"supplier,omitempty"`
	Quantity         int                `bson:"quantity"`
	Status           string             `bson:"status"`
	OrderDate        int64              `bson:"order_date,omitempty"`
	ExpectedDelivery int64              `bson:"expected_delivery,omitempty"`
}

func (d orderDoc) toDomain() domain.IncomingOrder {
	return domain.IncomingOrder{
		ID:               d.ID.Hex(),
		PartID:           d.PartID,
		PartName:         d.PartName,
		OrderNumber:      d.OrderNumber,
		TrackingNumber:   d.TrackingNumber,
		Supplier:         d.Supplier,
		Quantity:         d.Quantity,
		Status:           domain.OrderStatus(d.Status),
		OrderDate:        d.OrderDate,
		ExpectedDelivery: d.ExpectedDelivery,
	}
}

// ListIncoming returns orders that have not been received yet, soonest
// expected delivery first.
func (r *OrderRepository) ListIncoming(ctx context.Context) ([]domain.IncomingOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"status": bson.M{"$ne": string(domain.OrderReceived)}}
	cur, err := r.coll.Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "expected_delivery", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list incoming orders: %w", err)
	}
	defer cur.Close(ctx)

	var docs []orderDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode incoming orders: %w", err)
	}

	orders := make([]domain.IncomingOrder, 0, len(docs))
	for _, d := range docs {
		orders = append(orders, d.toDomain())
	}
	return orders, nil
}

func (r *OrderRepository) Find(ctx context.Context, id string) (*domain.IncomingOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	var doc orderDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	order := doc.toDomain()
	return &order, nil
}

func (r *OrderRepository) MarkReceived(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOrderNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": string(domain.OrderReceived)}},
	)
	if err != nil {
		return fmt.Errorf("mark order received: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
