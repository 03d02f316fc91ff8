package domain

// CategoryKey identifies the product family an item belongs to
type CategoryKey string

const (
	CategoryAnabolics CategoryKey = "anabolics"
	CategorySARMs     CategoryKey = "sarms"
	CategoryDietary   CategoryKey = "dietary"
)

// ProductItem represents a product in the catalog
type ProductItem struct {
	Slug        string      `json:"slug"`
	Name        string      `json:"name"`
	PriceGBP    float64     `json:"price_gbp"`
	Category    CategoryKey `json:"category"`
	Image       string      `json:"image"`
	Description string      `json:"description"`
}

// Category represents a product category as exposed in navigation and routes
type Category struct {
	Slug string      `json:"slug"`
	Name string      `json:"name"`
	Key  CategoryKey `json:"key"`
}

// DietaryEntry is the display record derived from a dietary image path.
// PriceGBP is nil when the image is not a known product.
type DietaryEntry struct {
	Image       string   `json:"image"`
	Name        string   `json:"name"`
	PriceGBP    *float64 `json:"price_gbp"`
	Description string   `json:"description"`
}
