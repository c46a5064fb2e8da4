package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cimco/maintenance-system/internal/core/domain"
	"github.com/cimco/maintenance-system/internal/core/ports"
)

const partsCollection = "parts"

type PartRepository struct {
	coll *mongo.Collection
}

func NewPartRepository(db *mongo.Database) *PartRepository {
	return &PartRepository{coll: db.Collection(partsCollection)}
}

type partDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Description  string             `bson:"description,omitempty"`
	Category     string             `bson:"category"`
	PartType     string             `bson:"part_type,omitempty"`
	Manufacturer string             `bson:"manufacturer,omitempty"`
	PartNumber   string             `bson:"part_number,omitempty"`
	Quantity     int                `bson:"quantity"`
	MinQuantity  int                `bson:"min_quantity"`
	LeadTimeDays int                `bson:"lead_time_days"`
	WearRating   int                `bson:"wear_rating,omitempty"`
	Location     string             `bson:"location,omitempty"`
	UnitCost     float64            `bson:"unit_cost,omitempty"`
	Supplier     string             `bson:"supplier,omitempty"`
}

func (d partDoc) toDomain() domain.Part {
	return domain.Part{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Description:  d.Description,
		Category:     d.Category,
		PartType:     d.PartType,
		Manufacturer: d.Manufacturer,
		PartNumber:   d.PartNumber,
		Quantity:     d.Quantity,
		MinQuantity:  d.MinQuantity,
		LeadTimeDays: d.LeadTimeDays,
		WearRating:   d.WearRating,
		Location:     d.Location,
		UnitCost:     d.UnitCost,
		Supplier:     d.Supplier,
	}
}

func partFilterQuery(filter ports.PartFilter) bson.M {
	q := bson.M{}
	if filter.Category != "" && filter.Category != "All" {
		q["category"] = filter.Category
	}
	if filter.Search != "" {
		q["name"] = bson.M{
			"$regex":   regexp.QuoteMeta(filter.Search),
			"$options": "i",
		}
	}
	return q
}

// ListPaginated returns one page of the inventory sorted by name. Page is
// 1-based; callers normalize page and pageSize before reaching here.
func (r *PartRepository) ListPaginated(ctx context.Context, page, pageSize int, filter ports.PartFilter) (*domain.PaginatedParts, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := partFilterQuery(filter)

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count parts: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer cur.Close(ctx)

	var docs []partDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode parts: %w", err)
	}

	items := make([]domain.Part, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toDomain())
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &domain.PaginatedParts{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (r *PartRepository) Create(ctx context.Context, part *domain.Part) (*domain.Part, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := partDoc{
		Name:         part.Name,
		Description:  part.Description,
		Category:     part.Category,
		PartType:     part.PartType,
		Manufacturer: part.Manufacturer,
		PartNumber:   part.PartNumber,
		Quantity:     part.Quantity,
		MinQuantity:  part.MinQuantity,
		LeadTimeDays: part.LeadTimeDays,
		WearRating:   part.WearRating,
		Location:     part.Location,
		UnitCost:     part.UnitCost,
		Supplier:     part.Supplier,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert part: %w", err)
	}

	created := *part
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// AdjustQuantity applies a signed delta to the stock level and returns the
// updated part. Stock never goes negative; an over-withdrawal floors at zero.
func (r *PartRepository) AdjustQuantity(ctx context.Context, id string, delta int) (*domain.Part, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPartNotFound
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)
	update := bson.M{"$inc": bson.M{"quantity": delta}}

	var doc partDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPartNotFound
		}
		return nil, fmt.Errorf("adjust part quantity: %w", err)
	}

	if doc.Quantity < 0 {
		if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid},
			bson.M{"$set": bson.M{"quantity": 0}}, opts).Decode(&doc); err != nil {
			return nil, fmt.Errorf("floor part quantity: %w", err)
		}
	}

	part := doc.toDomain()
	return &part, nil
}

func (r *PartRepository) UpdateLocation(ctx context.Context, id string, location string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPartNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"location": location}},
	)
	if err != nil {
		return fmt.Errorf("update part location: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPartNotFound
	}
	return nil
}

func (r *PartRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPartNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete part: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPartNotFound
	}
	return nil
}

// ListLowStock returns parts whose quantity has fallen to or below their
// reorder floor, using an $expr comparison between the two fields.
func (r *PartRepository) ListLowStock(ctx context.Context) ([]domain.Part, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"$expr": bson.M{"$lte": bson.A{"$quantity", "$min_quantity"}}}
	cur, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list low-stock parts: %w", err)
	}
	defer cur.Close(ctx)

	var docs []partDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode low-stock parts: %w", err)
	}

	parts := make([]domain.Part, 0, len(docs))
	for _, d := range docs {
		parts = append(parts, d.toDomain())
	}
	return parts, nil
}
