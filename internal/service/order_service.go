package service

import (
	"context"
	"time"

	"github.com/neolayer/store-backend/internal/models"
	"github.com/neolayer/store-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderService handles order business logic. Orders carry no enforced
// schema; the service only owns "_id", "status" and "updatedAt".
type OrderService struct {
	repo repository.OrderRepository
	now  func() time.Time
}

// NewOrderService creates a new order service
func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{
		repo: repo,
		now:  time.Now,
	}
}

// CreateOrder stores payload as-is under a fresh ObjectID. A caller-supplied
// "_id" is replaced.
func (s *OrderService) CreateOrder(ctx context.Context, payload models.Order) (models.Order, error) {
	order := make(models.Order, len(payload)+1)
	for k, v := range payload {
		order[k] = v
	}
	order[models.OrderIDField] = primitive.NewObjectID()

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, classify(err, MsgOrderNotFound)
	}
	return order, nil
}

// ListOrders returns every order, newest first
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, classify(err, MsgOrderNotFound)
	}
	return orders, nil
}

// ListOrdersByStatus returns orders whose status equals status exactly.
// No match is an empty list, not an error.
func (s *OrderService) ListOrdersByStatus(ctx context.Context, status string) ([]models.Order, error) {
	orders, err := s.repo.GetByStatus(ctx, status)
	if err != nil {
		return nil, classify(err, MsgOrderNotFound)
	}
	return orders, nil
}

// UpdateOrderStatus sets status and stamps updatedAt
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id, status string) error {
	oid, err := parseObjectID(id, MsgInvalidOrderID)
	if err != nil {
		return err
	}
	return classify(s.repo.UpdateStatus(ctx, oid, status, s.now().UTC()), MsgOrderNotFound)
}

func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	oid, err := parseObjectID(id, MsgInvalidOrderID)
	if err != nil {
		return err
	}
	return classify(s.repo.Delete(ctx, oid), MsgOrderNotFound)
}
