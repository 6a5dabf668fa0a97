package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"artprints/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[primitive.ObjectID]models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[primitive.ObjectID]models.Order),
	}
}

// Create adds a new order, assigning an identifier and creation time when
// they are unset.
func (r *MockOrderRepository) Create(ctx context.Context, order *models.Order) (bson.M, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	r.orders[order.ID] = *order
	return orderDoc(*order), nil
}

// FindByID returns a stored order document by its hex identifier.
func (r *MockOrderRepository) FindByID(ctx context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[oid]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return orderDoc(order), nil
}

// Len reports how many orders are stored.
func (r *MockOrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.orders)
}

// orderDoc renders an order the way the document store holds it.
func orderDoc(o models.Order) bson.M {
	items := make([]bson.M, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, bson.M{"print_id": it.PrintID, "quantity": it.Quantity})
	}
	return bson.M{
		"_id":              o.ID,
		"customer_name":    o.CustomerName,
		"customer_email":   o.CustomerEmail,
		"shipping_address": o.ShippingAddress,
		"items":            items,
		"total":            o.Total,
		"status":           o.Status,
		"created_at":       o.CreatedAt,
	}
}
