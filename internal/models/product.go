package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product representa un producto del catálogo. El core solo muta `stock`;
// el resto de campos pertenece a la superficie de catálogo.
type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	SKU         string             `json:"sku" bson:"sku" binding:"required"`
	Name        string             `json:"name" bson:"name" binding:"required"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Category    string             `json:"category" bson:"category"`
	PriceCents  int64              `json:"price_cents" bson:"price_cents" binding:"required"`
	Currency    string             `json:"currency" bson:"currency" binding:"required"`
	Stock       int64              `json:"stock" bson:"stock"`
	Images      []string           `json:"images,omitempty" bson:"images,omitempty"`
	IsActive    bool               `json:"is_active" bson:"is_active"`
	IsDeleted   bool               `json:"-" bson:"is_deleted"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
