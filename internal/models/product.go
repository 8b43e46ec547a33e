package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultEmoji is used when a product is created without one
const DefaultEmoji = "🎨"

// Product is a storefront item stored in the products collection.
// JSON names mirror the stored document so clients see "_id" and "createdAt".
type Product struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Emoji       string             `json:"emoji" bson:"emoji"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// ProductUpdate carries the fields of a partial update. Nil fields are left unchanged.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Emoji       *string
}

// IsEmpty reports whether the update changes nothing
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.Emoji == nil
}

// ProductRequest is the body of product create and update requests.
// Price stays raw so both 9.99 and "9.99" are accepted.
type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       json.RawMessage `json:"price"`
	Emoji       string          `json:"emoji"`
}
