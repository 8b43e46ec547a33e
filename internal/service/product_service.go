package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/neolayer/store-backend/internal/apperror"
	"github.com/neolayer/store-backend/internal/models"
	"github.com/neolayer/store-backend/internal/repository"
)

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
		now:  time.Now,
	}
}

// ListProducts returns all products in storage order
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, classify(err, MsgProductNotFound)
	}
	return products, nil
}

// CreateProduct validates req, applies defaults and stores a new product.
// name and description must be non-empty and price must be present; zero is a valid price.
func (s *ProductService) CreateProduct(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	price, hasPrice, priceErr := parsePrice(req.Price)

	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Description == "" {
		missing = append(missing, "description")
	}
	if !hasPrice && priceErr == nil {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return nil, apperror.Validation(fmt.Sprintf("%s: %s", MsgMissingFields, strings.Join(missing, ", ")))
	}
	if priceErr != nil {
		return nil, priceErr
	}

	emoji := req.Emoji
	if emoji == "" {
		emoji = models.DefaultEmoji
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Emoji:       emoji,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, classify(err, MsgProductNotFound)
	}
	return product, nil
}

// UpdateProduct applies the non-empty text fields and a present price.
// Empty strings never clear a field.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, req models.ProductRequest) error {
	oid, err := parseObjectID(id, MsgInvalidProductID)
	if err != nil {
		return err
	}

	var upd models.ProductUpdate
	if req.Name != "" {
		upd.Name = &req.Name
	}
	if req.Description != "" {
		upd.Description = &req.Description
	}
	if req.Emoji != "" {
		upd.Emoji = &req.Emoji
	}
	price, hasPrice, err := parsePrice(req.Price)
	if err != nil {
		return err
	}
	if hasPrice {
		upd.Price = &price
	}

	return classify(s.repo.Update(ctx, oid, upd), MsgProductNotFound)
}

// DeleteProduct removes a single product
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	oid, err := parseObjectID(id, MsgInvalidProductID)
	if err != nil {
		return err
	}
	return classify(s.repo.Delete(ctx, oid), MsgProductNotFound)
}

// numericPrefix matches the leading decimal number of a price string, so
// "9.99 EUR" reads as 9.99.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// parsePrice coerces a JSON number or the numeric prefix of a string to
// float64. An absent or null price reports hasPrice=false.
func parsePrice(raw json.RawMessage) (price float64, hasPrice bool, err error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false, nil
	}

	if raw[0] == '"' {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return 0, false, apperror.Validation(MsgInvalidPrice)
		}
		prefix := numericPrefix.FindString(strings.TrimSpace(str))
		if prefix == "" {
			return 0, false, apperror.Validation(MsgInvalidPrice)
		}
		price, err = strconv.ParseFloat(prefix, 64)
		if err != nil {
			return 0, false, apperror.Validation(MsgInvalidPrice)
		}
	} else if err := json.Unmarshal(raw, &price); err != nil {
		return 0, false, apperror.Validation(MsgInvalidPrice)
	}

	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, false, apperror.Validation(MsgInvalidPrice)
	}
	return price, true, nil
}
