package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"dnalab/internal/domain"
)

var (
	ErrDuplicateSlug   = errors.New("duplicate product slug")
	ErrUnknownCategory = errors.New("product references unknown category")
)

// DefaultTitle is shown for listings that are not scoped to a known category
const DefaultTitle = "Products"

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the URL identifier for a product name
func Slugify(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// Catalog is an immutable view over the product list and category table
type Catalog struct {
	products   []domain.ProductItem
	categories []domain.Category
	bySlug     map[string]int
	trending   []domain.ProductItem
}

// New builds a catalog. Slugs are derived from names and must be unique;
// every product must belong to a declared category key. Trending names that
// do not match a product are dropped.
func New(items []domain.ProductItem, cats []domain.Category, trendingNames []string) (*Catalog, error) {
	keys := make(map[domain.CategoryKey]bool, len(cats))
	for _, c := range cats {
		keys[c.Key] = true
	}

	c := &Catalog{
		products:   make([]domain.ProductItem, len(items)),
		categories: append([]domain.Category(nil), cats...),
		bySlug:     make(map[string]int, len(items)),
	}

	for i, item := range items {
		item.Slug = Slugify(item.Name)
		if _, exists := c.bySlug[item.Slug]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlug, item.Slug)
		}
		if !keys[item.Category] {
			return nil, fmt.Errorf("%w: %q has category %q", ErrUnknownCategory, item.Name, item.Category)
		}
		c.products[i] = item
		c.bySlug[item.Slug] = i
	}

	byName := make(map[string]int, len(c.products))
	for i, p := range c.products {
		byName[p.Name] = i
	}
	for _, name := range trendingNames {
		if i, ok := byName[name]; ok {
			c.trending = append(c.trending, c.products[i])
		}
	}

	return c, nil
}

// Default returns the shop's built-in catalog
func Default() *Catalog {
	c, err := New(products, categories, trendingNames)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid built-in data: %v", err))
	}
	return c
}

// Products returns the whole catalog in declaration order
func (c *Catalog) Products() []domain.ProductItem {
	return append([]domain.ProductItem(nil), c.products...)
}

// Categories returns the category table in navigation order
func (c *Catalog) Categories() []domain.Category {
	return append([]domain.Category(nil), c.categories...)
}

// CategoryBySlug looks up a category by its route slug
func (c *Catalog) CategoryBySlug(slug string) (domain.Category, bool) {
	for _, cat := range c.categories {
		if cat.Slug == slug {
			return cat, true
		}
	}
	return domain.Category{}, false
}

// CategoryTitle returns the display title for a listing page
func (c *Catalog) CategoryTitle(slug string) string {
	if cat, ok := c.CategoryBySlug(slug); ok {
		return cat.Name
	}
	return DefaultTitle
}

// ProductsByCategory filters the catalog by category slug.
// An empty or unknown slug yields the full catalog.
func (c *Catalog) ProductsByCategory(slug string) []domain.ProductItem {
	if slug == "" {
		return c.Products()
	}
	cat, ok := c.CategoryBySlug(slug)
	if !ok {
		return c.Products()
	}

	items := []domain.ProductItem{}
	for _, p := range c.products {
		if p.Category == cat.Key {
			items = append(items, p)
		}
	}
	return items
}

// ProductBySlug finds a single product
func (c *Catalog) ProductBySlug(slug string) (domain.ProductItem, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return domain.ProductItem{}, false
	}
	return c.products[i], true
}

// Trending returns the carousel products in their configured order
func (c *Catalog) Trending() []domain.ProductItem {
	return append([]domain.ProductItem(nil), c.trending...)
}
