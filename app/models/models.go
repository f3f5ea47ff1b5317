// Package models defines the documents stored in MongoDB. Every entity
// carries the canonical account email under the single field "email".
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role values the system distinguishes. Role is free text otherwise.
const (
	RoleAdmin  = "admin"
	RoleVendor = "vendor"
)

// StatusPending is the status new orders start in.
const StatusPending = "Pending"

// User is a storefront account. Email is the unique business key, backed by
// a unique index on the users collection.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// Product is a catalogue entry.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Stock       int                `bson:"stock,omitempty" json:"stock,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	ImageURL    string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	SellerEmail string             `bson:"seller_email,omitempty" json:"seller_email,omitempty"`
	CreatedAt   time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// CartItem links a customer's email to a product they intend to order.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	ProductID primitive.ObjectID `bson:"product_id" json:"product_id"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Price     float64            `bson:"price,omitempty" json:"price,omitempty"`
	Quantity  int                `bson:"quantity,omitempty" json:"quantity,omitempty"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product_id,omitempty" json:"product_id,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Price     float64            `bson:"price,omitempty" json:"price,omitempty"`
	Quantity  int                `bson:"quantity,omitempty" json:"quantity,omitempty"`
}

// Order is a placed order. Status starts as "Pending".
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Status    string             `bson:"status" json:"status"`
	Items     []OrderItem        `bson:"items,omitempty" json:"items,omitempty"`
	Total     float64            `bson:"total,omitempty" json:"total,omitempty"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
