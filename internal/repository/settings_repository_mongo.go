package repository

import (
	"context"
	"errors"
	"time"

	"github.com/neolayer/store-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSettingsRepository implements SettingsRepository on the settings collection
type MongoSettingsRepository struct {
	coll *mongo.Collection
}

func NewMongoSettingsRepository(coll *mongo.Collection) *MongoSettingsRepository {
	return &MongoSettingsRepository{coll: coll}
}

func (r *MongoSettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	if r.coll == nil {
		return nil, ErrStorageUnavailable
	}

	var s models.Settings
	err := r.coll.FindOne(ctx, storeFilter()).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *MongoSettingsRepository) Insert(ctx context.Context, s models.Settings) error {
	if r.coll == nil {
		return ErrStorageUnavailable
	}

	_, err := r.coll.InsertOne(ctx, s)
	if mongo.IsDuplicateKeyError(err) {
		return ErrSettingsExists
	}
	return err
}

func (r *MongoSettingsRepository) UpsertTheme(ctx context.Context, theme string, at time.Time) error {
	if r.coll == nil {
		return ErrStorageUnavailable
	}

	_, err := r.coll.UpdateOne(ctx,
		storeFilter(),
		bson.M{"$set": bson.M{"theme": theme, "updatedAt": at}},
		options.Update().SetUpsert(true),
	)
	return err
}

func storeFilter() bson.M {
	return bson.M{"_id": models.StoreSettingsID}
}

var _ SettingsRepository = (*MongoSettingsRepository)(nil)
