package repository

import (
	"context"

	"github.com/neolayer/store-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProductRepository implements ProductRepository on the products collection
type MongoProductRepository struct {
	coll *mongo.Collection
}

func NewMongoProductRepository(coll *mongo.Collection) *MongoProductRepository {
	return &MongoProductRepository{coll: coll}
}

func (r *MongoProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	if r.coll == nil {
		return nil, ErrStorageUnavailable
	}

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (r *MongoProductRepository) Create(ctx context.Context, p *models.Product) error {
	if r.coll == nil {
		return ErrStorageUnavailable
	}

	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, p)
	return err
}

func (r *MongoProductRepository) Update(ctx context.Context, id primitive.ObjectID, upd models.ProductUpdate) error {
	if r.coll == nil {
		return ErrStorageUnavailable
	}

	filter := bson.M{"_id": id}

	// An empty $set is rejected by the server, so only check existence.
	if upd.IsEmpty() {
		n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrProductNotFound
		}
		return nil
	}

	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.Emoji != nil {
		set["emoji"] = *upd.Emoji
	}

	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if r.coll == nil {
		return ErrStorageUnavailable
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

var _ ProductRepository = (*MongoProductRepository)(nil)
var _ ProductRepository = (*InMemoryProductRepository)(nil)
