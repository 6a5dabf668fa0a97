package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"artprints/internal/models"
	"artprints/internal/repositories"
)

// CatalogService handles business logic for the art print catalog.
type CatalogService struct {
	repo repositories.PrintRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.PrintRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListPrints retrieves raw catalog documents, optionally filtered by the
// featured flag.
func (s *CatalogService) ListPrints(ctx context.Context, featured *bool) ([]bson.M, error) {
	docs, err := s.repo.List(ctx, featured)
	if err != nil {
		return nil, &PersistenceError{Reason: truncateReason(err.Error())}
	}
	if docs == nil {
		docs = []bson.M{}
	}
	return docs, nil
}

// CreatePrint stores a new catalog entry and returns the stored document.
// Prints default to in stock when the payload leaves the flag unset.
func (s *CatalogService) CreatePrint(ctx context.Context, print *models.ArtPrint) (bson.M, error) {
	if print.InStock == nil {
		inStock := true
		print.InStock = &inStock
	}
	doc, err := s.repo.Create(ctx, print)
	if err != nil {
		return nil, &PersistenceError{Reason: truncateReason(err.Error())}
	}
	return doc, nil
}
