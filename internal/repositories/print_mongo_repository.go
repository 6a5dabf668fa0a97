package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"artprints/internal/models"
	"artprints/internal/store"
)

const printCollection = "artprint"

// MongoPrintRepository is a document-store implementation of PrintRepository.
type MongoPrintRepository struct {
	store *store.Store
}

// NewMongoPrintRepository creates a new instance of MongoPrintRepository.
func NewMongoPrintRepository(st *store.Store) *MongoPrintRepository {
	return &MongoPrintRepository{
		store: st,
	}
}

// List retrieves raw print documents, optionally filtered by the featured
// flag.
func (r *MongoPrintRepository) List(ctx context.Context, featured *bool) ([]bson.M, error) {
	filter := bson.M{}
	if featured != nil {
		filter["featured"] = *featured
	}
	docs, err := r.store.FindDocuments(ctx, printCollection, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list prints: %w", err)
	}
	return docs, nil
}

// FindByID retrieves a single print. A malformed identifier and a missing
// document both report ErrNotFound.
func (r *MongoPrintRepository) FindByID(ctx context.Context, id string) (*models.ArtPrint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("print %s: %w", id, ErrNotFound)
	}

	var print models.ArtPrint
	err = r.store.Collection(printCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&print)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("print %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get print %s: %w", id, err)
	}
	return &print, nil
}

// Create inserts a print and returns the stored document as the store holds
// it, identifier included.
func (r *MongoPrintRepository) Create(ctx context.Context, print *models.ArtPrint) (bson.M, error) {
	id, err := r.store.InsertDocument(ctx, printCollection, print)
	if err != nil {
		return nil, fmt.Errorf("failed to create print: %w", err)
	}
	doc, err := r.store.FindDocumentByID(ctx, printCollection, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read back print %s: %w", id.Hex(), err)
	}
	return doc, nil
}

// Count counts catalog documents.
func (r *MongoPrintRepository) Count(ctx context.Context) (int64, error) {
	return r.store.CountDocuments(ctx, printCollection)
}
