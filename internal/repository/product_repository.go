package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/neolayer/store-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrProductNotFound = errors.New("product not found")
	// ErrStorageUnavailable is returned when a repository has no collection handle
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	// Create stores p and assigns p.ID
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, id primitive.ObjectID, upd models.ProductUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// InMemoryProductRepository implements ProductRepository with in-memory storage.
// Products are returned in insertion order.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products map[primitive.ObjectID]models.Product
	order    []primitive.ObjectID
}

// NewInMemoryProductRepository creates an empty in-memory product repository
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: make(map[primitive.ObjectID]models.Product),
	}
}

// GetAll returns all products
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, r.products[id])
	}
	return products, nil
}

// GetByID returns a copy of a single product. It is not part of
// ProductRepository; tests use it to inspect what was stored.
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

func (r *InMemoryProductRepository) Create(ctx context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	r.products[p.ID] = *p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *InMemoryProductRepository) Update(ctx context.Context, id primitive.ObjectID, upd models.ProductUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, exists := r.products[id]
	if !exists {
		return ErrProductNotFound
	}
	if upd.Name != nil {
		product.Name = *upd.Name
	}
	if upd.Description != nil {
		product.Description = *upd.Description
	}
	if upd.Price != nil {
		product.Price = *upd.Price
	}
	if upd.Emoji != nil {
		product.Emoji = *upd.Emoji
	}
	r.products[id] = product
	return nil
}

func (r *InMemoryProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[id]; !exists {
		return ErrProductNotFound
	}
	delete(r.products, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
