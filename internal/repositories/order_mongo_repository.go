package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"artprints/internal/models"
	"artprints/internal/store"
)

const orderCollection = "order"

// MongoOrderRepository is a document-store implementation of OrderRepository.
type MongoOrderRepository struct {
	store *store.Store
}

// NewMongoOrderRepository creates a new instance of MongoOrderRepository.
func NewMongoOrderRepository(st *store.Store) *MongoOrderRepository {
	return &MongoOrderRepository{
		store: st,
	}
}

// Create inserts an order and returns the stored document.
func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) (bson.M, error) {
	id, err := r.store.InsertDocument(ctx, orderCollection, order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	doc, err := r.store.FindDocumentByID(ctx, orderCollection, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read back order %s: %w", id.Hex(), err)
	}
	return doc, nil
}

// FindByID retrieves a stored order document. A malformed identifier and a
// missing document both report ErrNotFound.
func (r *MongoOrderRepository) FindByID(ctx context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	doc, err := r.store.FindDocumentByID(ctx, orderCollection, oid)
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}
	return doc, nil
}
