package repositories

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"artprints/internal/models"
)

// MockPrintRepository is an in-memory implementation of PrintRepository. It
// backs the storeless demo mode and the handler tests. Insertion order is
// preserved so listings stay deterministic.
type MockPrintRepository struct {
	prints map[primitive.ObjectID]models.ArtPrint
	order  []primitive.ObjectID
	mu     sync.RWMutex
}

// NewMockPrintRepository creates a new instance of MockPrintRepository.
func NewMockPrintRepository() *MockPrintRepository {
	return &MockPrintRepository{
		prints: make(map[primitive.ObjectID]models.ArtPrint),
	}
}

// List returns raw print documents, optionally filtered by the featured flag.
func (r *MockPrintRepository) List(ctx context.Context, featured *bool) ([]bson.M, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]bson.M, 0, len(r.order))
	for _, id := range r.order {
		p := r.prints[id]
		if featured != nil && p.Featured != *featured {
			continue
		}
		docs = append(docs, printDoc(p))
	}
	return docs, nil
}

// FindByID returns a print by its hex identifier.
func (r *MockPrintRepository) FindByID(ctx context.Context, id string) (*models.ArtPrint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("print %s: %w", id, ErrNotFound)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	print, ok := r.prints[oid]
	if !ok {
		return nil, fmt.Errorf("print %s: %w", id, ErrNotFound)
	}
	return &print, nil
}

// Create adds a new print, assigning an identifier when none is set.
func (r *MockPrintRepository) Create(ctx context.Context, print *models.ArtPrint) (bson.M, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if print.ID.IsZero() {
		print.ID = primitive.NewObjectID()
	}
	r.prints[print.ID] = *print
	r.order = append(r.order, print.ID)
	return printDoc(*print), nil
}

// Count returns the number of stored prints.
func (r *MockPrintRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.prints)), nil
}

// printDoc renders a print the way the document store holds it.
func printDoc(p models.ArtPrint) bson.M {
	doc := bson.M{
		"_id":         p.ID,
		"title":       p.Title,
		"artist":      p.Artist,
		"description": p.Description,
		"price":       p.Price,
		"size":        p.Size,
		"image_url":   p.ImageURL,
		"tags":        p.Tags,
		"featured":    p.Featured,
	}
	if p.InStock != nil {
		doc["in_stock"] = *p.InStock
	}
	return doc
}
