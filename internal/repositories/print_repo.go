package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"artprints/internal/models"
)

// ErrNotFound is returned when a referenced document does not exist or its
// identifier is malformed.
var ErrNotFound = errors.New("not found")

// PrintRepository defines data access for the artprint collection. List and
// Create return raw stored documents so handlers can serialize them for the
// public API; FindByID returns a typed print for order validation.
type PrintRepository interface {
	List(ctx context.Context, featured *bool) ([]bson.M, error)
	FindByID(ctx context.Context, id string) (*models.ArtPrint, error)
	Create(ctx context.Context, print *models.ArtPrint) (bson.M, error)
	Count(ctx context.Context) (int64, error)
}
