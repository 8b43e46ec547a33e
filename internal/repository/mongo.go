package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/neolayer/store-backend/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names
const (
	ProductsCollection = "products"
	OrdersCollection   = "orders"
	SettingsCollection = "settings"
)

// MongoStore owns the single client and the three collection handles.
// The handles are resolved once in Connect and never reassigned.
type MongoStore struct {
	client   *mongo.Client
	Products *mongo.Collection
	Orders   *mongo.Collection
	Settings *mongo.Collection
}

// Connect opens the client, pings the primary and resolves the collections.
// Connect and ping share cfg.ConnectTimeout.
func Connect(ctx context.Context, cfg config.MongoConfig) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.ConnectTimeout)*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(cfg.Database)
	return &MongoStore{
		client:   client,
		Products: db.Collection(ProductsCollection),
		Orders:   db.Collection(OrdersCollection),
		Settings: db.Collection(SettingsCollection),
	}, nil
}

// Close disconnects the client
func (s *MongoStore) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) ProductRepository() *MongoProductRepository {
	return NewMongoProductRepository(s.Products)
}

func (s *MongoStore) OrderRepository() *MongoOrderRepository {
	return NewMongoOrderRepository(s.Orders)
}

func (s *MongoStore) SettingsRepository() *MongoSettingsRepository {
	return NewMongoSettingsRepository(s.Settings)
}
