package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/neolayer/store-backend/internal/models"
	"github.com/neolayer/store-backend/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrder handles POST /api/orders. The body is stored as-is.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var payload models.Order
	if err := decodeJSON(w, r, &payload); err != nil {
		WriteAppError(w, err, h.log)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), payload)
	if err != nil {
		WriteAppError(w, err, h.log)
		return
	}

	h.log.Info("new order received", "customer", order.CustomerName(), "order_id", order[models.OrderIDField])
	WriteJSON(w, http.StatusCreated, order, h.log)
}

// ListOrders handles GET /api/orders, newest first
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		WriteAppError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, orders, h.log)
}

// ListOrdersByStatus handles GET /api/orders/status/{status}
func (h *OrderHandler) ListOrdersByStatus(w http.ResponseWriter, r *http.Request) {
	status := chi.URLParam(r, "status")

	orders, err := h.orderService.ListOrdersByStatus(r.Context(), status)
	if err != nil {
		WriteAppError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, orders, h.log)
}

// UpdateOrderStatus handles PUT /api/orders/{id}/status
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	var req models.StatusUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteAppError(w, err, h.log)
		return
	}

	if err := h.orderService.UpdateOrderStatus(r.Context(), orderID, req.Status); err != nil {
		WriteAppError(w, err, h.log)
		return
	}

	h.log.Info("order status updated", "order_id", orderID, "status", req.Status)
	WriteMessage(w, service.MsgOrderStatusUpdated, h.log)
}

// DeleteOrder handles DELETE /api/orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	if err := h.orderService.DeleteOrder(r.Context(), orderID); err != nil {
		WriteAppError(w, err, h.log)
		return
	}

	WriteMessage(w, service.MsgOrderDeleted, h.log)
}
