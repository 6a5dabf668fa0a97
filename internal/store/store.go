package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotConnected is returned by store operations when no document store
// connection is available.
var ErrNotConnected = errors.New("document store not connected")

// ErrNoDocument is returned when a lookup matches no document.
var ErrNoDocument = errors.New("document not found")

const connectTimeout = 10 * time.Second

// Store wraps a Mongo database handle with the generic document helpers the
// repositories and diagnostics build on. A nil *Store is valid: every
// operation then reports ErrNotConnected, so the app can run without a
// configured DATABASE_URL.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the document store and pings it. An empty URI yields
// (nil, nil): the caller runs storeless.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	if uri == "" {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	return &Store{client: client, db: client.Database(dbName)}, nil
}

// Connected reports whether a database handle is available.
func (s *Store) Connected() bool {
	return s != nil && s.db != nil
}

// Name returns the database name, or "" when not connected.
func (s *Store) Name() string {
	if !s.Connected() {
		return ""
	}
	return s.db.Name()
}

// Collection returns a handle to the named collection, or nil when not
// connected.
func (s *Store) Collection(name string) *mongo.Collection {
	if !s.Connected() {
		return nil
	}
	return s.db.Collection(name)
}

// CollectionNames lists up to limit collection names, for diagnostics.
func (s *Store) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	if !s.Connected() {
		return nil, ErrNotConnected
	}
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

// InsertDocument inserts payload into the named collection and returns the
// store-assigned identifier.
func (s *Store) InsertDocument(ctx context.Context, collection string, payload any) (primitive.ObjectID, error) {
	if !s.Connected() {
		return primitive.NilObjectID, ErrNotConnected
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, payload)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected identifier type %T from %s", res.InsertedID, collection)
	}
	return id, nil
}

// FindDocumentByID fetches a single raw document by its identifier.
func (s *Store) FindDocumentByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error) {
	if !s.Connected() {
		return nil, ErrNotConnected
	}
	var doc bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("failed to read from %s: %w", collection, err)
	}
	return doc, nil
}

// FindDocuments fetches all raw documents matching filter. A nil filter
// matches everything.
func (s *Store) FindDocuments(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	if !s.Connected() {
		return nil, ErrNotConnected
	}
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode documents from %s: %w", collection, err)
	}
	return docs, nil
}

// CountDocuments counts all documents in the named collection.
func (s *Store) CountDocuments(ctx context.Context, collection string) (int64, error) {
	if !s.Connected() {
		return 0, ErrNotConnected
	}
	count, err := s.db.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count documents in %s: %w", collection, err)
	}
	return count, nil
}

// Close tears down the underlying client connection. Closing a nil or
// never-connected store is a no-op.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from document store: %w", err)
	}
	return nil
}
