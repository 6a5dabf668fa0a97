package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a single requested line of an order: a print reference and a
// quantity.
type OrderItem struct {
	PrintID  string `bson:"print_id" json:"print_id" validate:"required"`
	Quantity int    `bson:"quantity" json:"quantity" validate:"required,gt=0"`
}

// OrderLine is an OrderItem enriched with the catalog-resolved title and
// price at order-creation time. Lines are returned for display convenience
// and never stored.
type OrderLine struct {
	PrintID  string  `json:"print_id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order represents a customer order. The total is always recomputed
// server-side from current catalog prices, never taken from the client.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerName    string             `bson:"customer_name" json:"customer_name"`
	CustomerEmail   string             `bson:"customer_email" json:"customer_email"`
	ShippingAddress string             `bson:"shipping_address" json:"shipping_address"`
	Items           []OrderItem        `bson:"items" json:"items"`
	Total           float64            `bson:"total" json:"total"`
	Status          string             `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

// CreateOrderRequest is the payload accepted by POST /api/orders. Items stay
// unconstrained here so an empty list reaches the order service, which
// rejects it with its own message.
type CreateOrderRequest struct {
	CustomerName    string      `json:"customer_name" validate:"required,min=1,max=200"`
	CustomerEmail   string      `json:"customer_email" validate:"required,email"`
	ShippingAddress string      `json:"shipping_address" validate:"required,min=1"`
	Items           []OrderItem `json:"items" validate:"dive"`
}
