package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/neolayer/store-backend/internal/apperror"
	"github.com/neolayer/store-backend/internal/models"
	"github.com/neolayer/store-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var fixedNow = time.Date(2024, 4, 2, 10, 30, 0, 0, time.UTC)

func newTestProductService() (*ProductService, *repository.InMemoryProductRepository) {
	repo := repository.NewInMemoryProductRepository()
	svc := NewProductService(repo)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func assertStatus(t *testing.T, err error, want int) {
	t.Helper()
	if got := apperror.StatusCode(err); got != want {
		t.Fatalf("status = %d, want %d (err: %v)", got, want, err)
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	tests := []struct {
		name      string
		req       models.ProductRequest
		wantErr   string
		wantPrice float64
		wantEmoji string
	}{
		{
			name:      "string price coerced and default emoji",
			req:       models.ProductRequest{Name: "Mug", Description: "Ceramic", Price: json.RawMessage(`"9.99"`)},
			wantPrice: 9.99,
			wantEmoji: models.DefaultEmoji,
		},
		{
			name:      "numeric price and explicit emoji",
			req:       models.ProductRequest{Name: "Tea", Description: "Green", Price: json.RawMessage(`4.5`), Emoji: "🍵"},
			wantPrice: 4.5,
			wantEmoji: "🍵",
		},
		{
			name:      "zero price is allowed",
			req:       models.ProductRequest{Name: "Sticker", Description: "Free", Price: json.RawMessage(`0`)},
			wantPrice: 0,
			wantEmoji: models.DefaultEmoji,
		},
		{
			name:      "numeric prefix of a string price",
			req:       models.ProductRequest{Name: "Mug", Description: "Ceramic", Price: json.RawMessage(`"9.99abc"`)},
			wantPrice: 9.99,
			wantEmoji: models.DefaultEmoji,
		},
		{
			name:      "padded price with unit",
			req:       models.ProductRequest{Name: "Mug", Description: "Ceramic", Price: json.RawMessage(`" 12 EUR"`)},
			wantPrice: 12,
			wantEmoji: models.DefaultEmoji,
		},
		{
			name:      "leading dot",
			req:       models.ProductRequest{Name: "Mug", Description: "Ceramic", Price: json.RawMessage(`".5"`)},
			wantPrice: 0.5,
			wantEmoji: models.DefaultEmoji,
		},
		{
			name:    "string without leading number",
			req:     models.ProductRequest{Name: "Mug", Description: "Ceramic", Price: json.RawMessage(`"EUR 12"`)},
			wantErr: MsgInvalidPrice,
		},
		{
			name:    "missing price",
			req:     models.ProductRequest{Name: "Mug", Description: "Ceramic"},
			wantErr: "Missing required fields: price",
		},
		{
			name:    "null price counts as missing",
			req:     models.ProductRequest{Name: "Mug", Description: "Ceramic", Price: json.RawMessage(`null`)},
			wantErr: "Missing required fields: price",
		},
		{
			name:    "everything missing",
			req:     models.ProductRequest{},
			wantErr: "Missing required fields: name, description, price",
		},
		{
			name:    "unparseable price",
			req:     models.ProductRequest{Name: "Mug", Description: "Ceramic", Price: json.RawMessage(`"cheap"`)},
			wantErr: MsgInvalidPrice,
		},
		{
			name:    "boolean price",
			req:     models.ProductRequest{Name: "Mug", Description: "Ceramic", Price: json.RawMessage(`true`)},
			wantErr: MsgInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestProductService()

			product, err := svc.CreateProduct(context.Background(), tt.req)
			if tt.wantErr != "" {
				assertStatus(t, err, http.StatusBadRequest)
				if msg := apperror.From(err).Message; msg != tt.wantErr {
					t.Fatalf("message = %q, want %q", msg, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if product.ID.IsZero() {
				t.Error("expected an assigned ID")
			}
			if product.Price != tt.wantPrice {
				t.Errorf("price = %v, want %v", product.Price, tt.wantPrice)
			}
			if product.Emoji != tt.wantEmoji {
				t.Errorf("emoji = %q, want %q", product.Emoji, tt.wantEmoji)
			}
			if !product.CreatedAt.Equal(fixedNow) {
				t.Errorf("createdAt = %v, want %v", product.CreatedAt, fixedNow)
			}

			stored, err := repo.GetByID(context.Background(), product.ID)
			if err != nil {
				t.Fatalf("product not stored: %v", err)
			}
			if *stored != *product {
				t.Errorf("stored %#v differs from returned %#v", stored, product)
			}
		})
	}
}

func TestProductService_UpdateProduct(t *testing.T) {
	svc, repo := newTestProductService()
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, models.ProductRequest{
		Name: "Mug", Description: "Ceramic", Price: json.RawMessage(`9.99`), Emoji: "☕",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := created.ID.Hex()

	// price only leaves everything else untouched
	if err := svc.UpdateProduct(ctx, id, models.ProductRequest{Price: json.RawMessage(`"12"`)}); err != nil {
		t.Fatalf("update price: %v", err)
	}
	got, _ := repo.GetByID(ctx, created.ID)
	if got.Price != 12 || got.Name != "Mug" || got.Description != "Ceramic" || got.Emoji != "☕" {
		t.Fatalf("unexpected product after price update: %#v", got)
	}

	// empty strings do not clear fields
	if err := svc.UpdateProduct(ctx, id, models.ProductRequest{Name: "", Emoji: "", Description: "Stoneware"}); err != nil {
		t.Fatalf("update description: %v", err)
	}
	got, _ = repo.GetByID(ctx, created.ID)
	if got.Name != "Mug" || got.Emoji != "☕" || got.Description != "Stoneware" {
		t.Fatalf("unexpected product after description update: %#v", got)
	}

	// nothing to change still succeeds for an existing product
	if err := svc.UpdateProduct(ctx, id, models.ProductRequest{}); err != nil {
		t.Fatalf("empty update: %v", err)
	}

	assertStatus(t, svc.UpdateProduct(ctx, "not-an-id", models.ProductRequest{Name: "x"}), http.StatusBadRequest)
	assertStatus(t, svc.UpdateProduct(ctx, primitive.NewObjectID().Hex(), models.ProductRequest{Name: "x"}), http.StatusNotFound)
	assertStatus(t, svc.UpdateProduct(ctx, id, models.ProductRequest{Price: json.RawMessage(`"abc"`)}), http.StatusBadRequest)
}

func TestProductService_DeleteProduct(t *testing.T) {
	svc, _ := newTestProductService()
	ctx := context.Background()

	created, _ := svc.CreateProduct(ctx, models.ProductRequest{Name: "Mug", Description: "Ceramic", Price: json.RawMessage(`1`)})

	if err := svc.DeleteProduct(ctx, created.ID.Hex()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	assertStatus(t, svc.DeleteProduct(ctx, created.ID.Hex()), http.StatusNotFound)
	assertStatus(t, svc.DeleteProduct(ctx, "12345"), http.StatusBadRequest)

	products, err := svc.ListProducts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected no products, got %d", len(products))
	}
}

// failingProductRepo reports err from every call
type failingProductRepo struct{ err error }

func (f failingProductRepo) GetAll(context.Context) ([]models.Product, error) { return nil, f.err }
func (f failingProductRepo) Create(context.Context, *models.Product) error    { return f.err }
func (f failingProductRepo) Update(context.Context, primitive.ObjectID, models.ProductUpdate) error {
	return f.err
}
func (f failingProductRepo) Delete(context.Context, primitive.ObjectID) error { return f.err }

func TestProductService_StorageErrors(t *testing.T) {
	ctx := context.Background()

	unavailable := NewProductService(failingProductRepo{err: repository.ErrStorageUnavailable})
	_, err := unavailable.ListProducts(ctx)
	assertStatus(t, err, http.StatusInternalServerError)
	if appErr := apperror.From(err); appErr.Kind != apperror.KindStorageUnavailable || appErr.Message != apperror.StorageUnavailableMessage {
		t.Errorf("unexpected error %#v", appErr)
	}

	broken := NewProductService(failingProductRepo{err: errors.New("socket closed")})
	_, err = broken.CreateProduct(ctx, models.ProductRequest{Name: "a", Description: "b", Price: json.RawMessage(`1`)})
	assertStatus(t, err, http.StatusInternalServerError)
	if msg := apperror.From(err).Message; msg != "socket closed" {
		t.Errorf("expected the driver message, got %q", msg)
	}
}
