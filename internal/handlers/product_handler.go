package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/neolayer/store-backend/internal/models"
	"github.com/neolayer/store-backend/internal/service"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		WriteAppError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}

// CreateProduct handles POST /api/products
// - 201: created product including its _id
// - 400: missing name/description/price or unparseable price
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.ProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteAppError(w, err, h.logger)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		WriteAppError(w, err, h.logger)
		return
	}

	h.logger.Info("product created", "product_id", product.ID.Hex(), "name", product.Name)
	WriteJSON(w, http.StatusCreated, product, h.logger)
}

// UpdateProduct handles PUT /api/products/{id}
// - 200: updated
// - 400: invalid ID supplied
// - 404: product not found
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	var req models.ProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteAppError(w, err, h.logger)
		return
	}

	if err := h.service.UpdateProduct(r.Context(), productID, req); err != nil {
		WriteAppError(w, err, h.logger)
		return
	}

	WriteMessage(w, service.MsgProductUpdated, h.logger)
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	if err := h.service.DeleteProduct(r.Context(), productID); err != nil {
		WriteAppError(w, err, h.logger)
		return
	}

	h.logger.Info("product deleted", "product_id", productID)
	WriteMessage(w, service.MsgProductDeleted, h.logger)
}
