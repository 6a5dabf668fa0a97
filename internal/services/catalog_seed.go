package services

import (
	"context"
	"log"

	"artprints/internal/models"
	"artprints/internal/repositories"
)

// SampleCatalog returns the prints seeded into an empty catalog.
func SampleCatalog() []models.ArtPrint {
	inStock := true
	return []models.ArtPrint{
		{
			Title:       "Sunlit Dunes",
			Artist:      "Ava Linden",
			Description: "Soft gradients inspired by desert horizons.",
			Price:       49.0,
			Size:        "12x18 in",
			ImageURL:    "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?q=80&w=1200&auto=format&fit=crop",
			Tags:        []string{"abstract", "minimal"},
			InStock:     &inStock,
			Featured:    true,
		},
		{
			Title:       "Coastal Mist",
			Artist:      "Noah Pierce",
			Description: "Calming blue tones of a foggy shoreline.",
			Price:       59.0,
			Size:        "16x20 in",
			ImageURL:    "https://images.unsplash.com/photo-1501785888041-af3ef285b470?q=80&w=1200&auto=format&fit=crop",
			Tags:        []string{"landscape", "blue"},
			InStock:     &inStock,
			Featured:    true,
		},
		{
			Title:       "City Geometry",
			Artist:      "Mila Ortega",
			Description: "Architectural lines and morning light.",
			Price:       45.0,
			Size:        "12x16 in",
			ImageURL:    "https://images.unsplash.com/photo-1491553895911-0055eca6402d?q=80&w=1200&auto=format&fit=crop",
			Tags:        []string{"architecture", "black-white"},
			InStock:     &inStock,
			Featured:    false,
		},
		{
			Title:       "Botanical Study",
			Artist:      "Elle Fuji",
			Description: "Delicate leaves with watercolor textures.",
			Price:       39.0,
			Size:        "11x14 in",
			ImageURL:    "https://images.unsplash.com/photo-1499951360447-b19be8fe80f5?q=80&w=1200&auto=format&fit=crop",
			Tags:        []string{"botanical", "nature"},
			InStock:     &inStock,
			Featured:    false,
		},
	}
}

// SeedCatalog inserts the sample prints when the catalog is empty. Seeding is
// best-effort: any failure, including an unavailable store, is logged and
// dropped so startup never blocks on it.
func SeedCatalog(ctx context.Context, repo repositories.PrintRepository) {
	if repo == nil {
		return
	}

	count, err := repo.Count(ctx)
	if err != nil {
		log.Printf("Skipping catalog seed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	for _, print := range SampleCatalog() {
		p := print
		if _, err := repo.Create(ctx, &p); err != nil {
			log.Printf("Error seeding print %s: %v", p.Title, err)
		} else {
			log.Printf("Seeded print: %s", p.Title)
		}
	}
}
