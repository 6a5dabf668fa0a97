package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"artprints/internal/models"
)

// OrderRepository defines data access for the order collection.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) (bson.M, error)
	FindByID(ctx context.Context, id string) (bson.M, error)
}
