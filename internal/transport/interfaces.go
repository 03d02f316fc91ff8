package transport

import (
	"context"

	"dnalab/internal/domain"
)

// CatalogReader is the read side of the product catalog used by handlers
type CatalogReader interface {
	Products() []domain.ProductItem
	Categories() []domain.Category
	CategoryBySlug(slug string) (domain.Category, bool)
	CategoryTitle(slug string) string
	ProductsByCategory(slug string) []domain.ProductItem
	ProductBySlug(slug string) (domain.ProductItem, bool)
	Trending() []domain.ProductItem
}

// DietaryLister returns the resolved dietary supplement entries
type DietaryLister interface {
	Entries(ctx context.Context) []domain.DietaryEntry
}

// VerdictObserver records authentication code checks
type VerdictObserver interface {
	ObserveVerdict(verdict string)
}

type noopObserver struct{}

func (noopObserver) ObserveVerdict(string) {}
