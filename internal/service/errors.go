package service

import (
	"errors"

	"github.com/neolayer/store-backend/internal/apperror"
	"github.com/neolayer/store-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client-facing messages
const (
	MsgInvalidProductID   = "Invalid product ID"
	MsgInvalidOrderID     = "Invalid order ID"
	MsgProductNotFound    = "Product not found"
	MsgOrderNotFound      = "Order not found"
	MsgMissingFields      = "Missing required fields"
	MsgInvalidPrice       = "Invalid price"
	MsgThemeRequired      = "Theme is required"
	MsgProductUpdated     = "Product updated successfully"
	MsgProductDeleted     = "Product deleted successfully"
	MsgOrderStatusUpdated = "Order status updated"
	MsgOrderDeleted       = "Order deleted"
	MsgThemeUpdated       = "Theme updated successfully"
)

// classify turns a repository error into an AppError. notFound is the
// message used when the repository reports a missing document.
func classify(err error, notFound string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrStorageUnavailable):
		return apperror.StorageUnavailable(err)
	case errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrOrderNotFound),
		errors.Is(err, repository.ErrSettingsNotFound):
		return apperror.NotFound(notFound, err)
	default:
		return apperror.Storage(err)
	}
}

// parseObjectID validates a path identifier before it reaches storage
func parseObjectID(id, invalidMsg string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperror.Validation(invalidMsg)
	}
	return oid, nil
}
