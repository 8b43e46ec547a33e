package repository

import (
	"context"
	"time"

	"github.com/neolayer/store-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOrderRepository implements OrderRepository on the orders collection
type MongoOrderRepository struct {
	coll *mongo.Collection
}

func NewMongoOrderRepository(coll *mongo.Collection) *MongoOrderRepository {
	return &MongoOrderRepository{coll: coll}
}

func (r *MongoOrderRepository) Create(ctx context.Context, order models.Order) error {
	if r.coll == nil {
		return ErrStorageUnavailable
	}
	if _, ok := order[models.OrderIDField].(primitive.ObjectID); !ok {
		return ErrMissingOrderID
	}

	_, err := r.coll.InsertOne(ctx, bson.M(order))
	return err
}

func (r *MongoOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoOrderRepository) GetByStatus(ctx context.Context, status string) ([]models.Order, error) {
	return r.find(ctx, bson.M{models.OrderStatusField: status})
}

func (r *MongoOrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, at time.Time) error {
	if r.coll == nil {
		return ErrStorageUnavailable
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			models.OrderStatusField:    status,
			models.OrderUpdatedAtField: at,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *MongoOrderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if r.coll == nil {
		return ErrStorageUnavailable
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *MongoOrderRepository) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	if r.coll == nil {
		return nil, ErrStorageUnavailable
	}

	opts := options.Find().SetSort(bson.D{{Key: models.OrderCreatedAtField, Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	// Decoding into bson.M keeps embedded documents as maps so they encode
	// back to JSON objects.
	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, models.Order(doc))
	}
	return orders, nil
}

var _ OrderRepository = (*MongoOrderRepository)(nil)
