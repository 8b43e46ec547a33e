package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/neolayer/store-backend/internal/models"
	"github.com/neolayer/store-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestOrderService() *OrderService {
	svc := NewOrderService(repository.NewInMemoryOrderRepository())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestOrderService_CreateOrder(t *testing.T) {
	svc := newTestOrderService()
	ctx := context.Background()

	payload := models.Order{
		"_id":          "caller-chosen",
		"customerName": "Ada",
		"status":       "pending",
		"items":        []interface{}{map[string]interface{}{"name": "Mug", "qty": 2.0}},
	}

	order, err := svc.CreateOrder(ctx, payload)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	id, ok := order["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		t.Fatalf("expected a server-assigned ObjectID, got %#v", order["_id"])
	}
	if order.CustomerName() != "Ada" || order["status"] != "pending" {
		t.Errorf("payload not preserved: %#v", order)
	}
	if payload["_id"] != "caller-chosen" {
		t.Error("CreateOrder must not mutate the caller's payload")
	}

	empty, err := svc.CreateOrder(ctx, nil)
	if err != nil {
		t.Fatalf("create empty: %v", err)
	}
	if len(empty) != 1 {
		t.Errorf("expected only _id on an empty order, got %#v", empty)
	}
}

func TestOrderService_ListOrdersNewestFirst(t *testing.T) {
	svc := newTestOrderService()
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := svc.CreateOrder(ctx, models.Order{
			"customerName": string(rune('A' + i)),
			"createdAt":    base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	orders, err := svc.ListOrders(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	for i := 1; i < len(orders); i++ {
		prev := orders[i-1]["createdAt"].(time.Time)
		cur := orders[i]["createdAt"].(time.Time)
		if !prev.After(cur) {
			t.Errorf("orders not strictly descending at %d: %v then %v", i, prev, cur)
		}
	}
}

func TestOrderService_StatusLifecycle(t *testing.T) {
	svc := newTestOrderService()
	ctx := context.Background()

	order, _ := svc.CreateOrder(ctx, models.Order{"status": "pending"})
	id := order["_id"].(primitive.ObjectID).Hex()

	none, err := svc.ListOrdersByStatus(ctx, "shipped")
	if err != nil {
		t.Fatalf("list by status: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty list, got %#v", none)
	}

	if err := svc.UpdateOrderStatus(ctx, id, "shipped"); err != nil {
		t.Fatalf("update status: %v", err)
	}

	shipped, _ := svc.ListOrdersByStatus(ctx, "shipped")
	if len(shipped) != 1 {
		t.Fatalf("expected 1 shipped order, got %d", len(shipped))
	}
	if shipped[0]["updatedAt"] != fixedNow {
		t.Errorf("expected updatedAt %v, got %v", fixedNow, shipped[0]["updatedAt"])
	}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"update malformed id", svc.UpdateOrderStatus(ctx, "xyz", "a"), http.StatusBadRequest},
		{"update unknown id", svc.UpdateOrderStatus(ctx, primitive.NewObjectID().Hex(), "a"), http.StatusNotFound},
		{"delete malformed id", svc.DeleteOrder(ctx, "xyz"), http.StatusBadRequest},
		{"delete unknown id", svc.DeleteOrder(ctx, primitive.NewObjectID().Hex()), http.StatusNotFound},
		{"delete existing", svc.DeleteOrder(ctx, id), http.StatusOK},
		{"delete again", svc.DeleteOrder(ctx, id), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertStatus(t, tt.err, tt.want)
		})
	}
}
