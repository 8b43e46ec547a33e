package repository

import (
	"cmp"
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/neolayer/store-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrMissingOrderID = errors.New("order has no _id")
)

// OrderRepository defines the interface for order data access.
// List methods return orders newest first by createdAt.
type OrderRepository interface {
	// Create stores order verbatim; order["_id"] must already hold an ObjectID
	Create(ctx context.Context, order models.Order) error
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByStatus(ctx context.Context, status string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, at time.Time) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// InMemoryOrderRepository implements OrderRepository with in-memory storage
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{}
}

func (r *InMemoryOrderRepository) Create(ctx context.Context, order models.Order) error {
	if _, ok := order[models.OrderIDField].(primitive.ObjectID); !ok {
		return ErrMissingOrderID
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, copyOrder(order))
	return nil
}

func (r *InMemoryOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	return r.filter(func(models.Order) bool { return true }), nil
}

func (r *InMemoryOrderRepository) GetByStatus(ctx context.Context, status string) ([]models.Order, error) {
	return r.filter(func(o models.Order) bool {
		s, ok := o[models.OrderStatusField].(string)
		return ok && s == status
	}), nil
}

func (r *InMemoryOrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrOrderNotFound
	}
	r.orders[i][models.OrderStatusField] = status
	r.orders[i][models.OrderUpdatedAtField] = at
	return nil
}

func (r *InMemoryOrderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrOrderNotFound
	}
	r.orders = append(r.orders[:i], r.orders[i+1:]...)
	return nil
}

func (r *InMemoryOrderRepository) filter(keep func(models.Order) bool) []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if keep(o) {
			out = append(out, copyOrder(o))
		}
	}
	sortNewestFirst(out)
	return out
}

// indexOf must be called with r.mu held
func (r *InMemoryOrderRepository) indexOf(id primitive.ObjectID) int {
	for i, o := range r.orders {
		if oid, ok := o[models.OrderIDField].(primitive.ObjectID); ok && oid == id {
			return i
		}
	}
	return -1
}

func copyOrder(o models.Order) models.Order {
	cp := make(models.Order, len(o))
	for k, v := range o {
		cp[k] = v
	}
	return cp
}

// sortNewestFirst orders by createdAt descending using the same type
// precedence the database applies: a missing or null createdAt sorts last.
func sortNewestFirst(orders []models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return compareSortValues(orders[i][models.OrderCreatedAtField], orders[j][models.OrderCreatedAtField]) > 0
	})
}

func compareSortValues(a, b interface{}) int {
	ra, rb := typeRank(a), typeRank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}

	switch av := a.(type) {
	case string:
		return cmp.Compare(av, b.(string))
	case bool:
		bv := b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		default:
			return 1
		}
	case time.Time, primitive.DateTime:
		return cmp.Compare(toTime(a).UnixNano(), toTime(b).UnixNano())
	}

	if fa, ok := toFloat(a); ok {
		fb, _ := toFloat(b)
		return cmp.Compare(fa, fb)
	}
	return 0
}

func typeRank(v interface{}) int {
	switch v.(type) {
	case nil:
		return 0
	case float64, float32, int, int32, int64:
		return 1
	case string:
		return 2
	case map[string]interface{}, models.Order:
		return 3
	case []interface{}:
		return 4
	case primitive.ObjectID:
		return 5
	case bool:
		return 6
	case time.Time, primitive.DateTime:
		return 7
	default:
		return 8
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func toTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case primitive.DateTime:
		return t.Time()
	}
	return time.Time{}
}

var _ OrderRepository = (*InMemoryOrderRepository)(nil)
