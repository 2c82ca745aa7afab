package models

import (
	"strings"
	"time"
)

// Marketplace identifies which supported e-commerce site a URL belongs to.
type Marketplace string

const (
	MarketplaceAmazon      Marketplace = "AMAZON"
	MarketplaceTrendyol    Marketplace = "TRENDYOL"
	MarketplaceHepsiburada Marketplace = "HEPSIBURADA"
	MarketplaceOther       Marketplace = "OTHER"
)

// IsSupported reports whether the marketplace has an extractor and a search crawler.
func (m Marketplace) IsSupported() bool {
	return m == MarketplaceAmazon || m == MarketplaceTrendyol || m == MarketplaceHepsiburada
}

// Price is a parsed monetary amount with its inferred currency code.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Rating is a parsed star rating with its review count.
type Rating struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// Product is a structured snapshot of a scraped marketplace product page.
type Product struct {
	ID           int         `json:"id" db:"id"`
	Marketplace  Marketplace `json:"marketplace" db:"marketplace"`
	URL          string      `json:"url" db:"url"`
	Name         string      `json:"name" db:"name"`
	Price        Price       `json:"price"`
	Rating       Rating      `json:"rating"`
	Images       []string    `json:"images"`
	CategoryPath []string    `json:"category_path"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}

// HasRating reports whether any rating information was extracted.
func (p *Product) HasRating() bool {
	return p.Rating.Value > 0 || p.Rating.Count > 0
}

// SearchResult is one candidate item collected during a search crawl.
// Candidates missing any required field (name, price text, image, URL) are
// dropped by the crawler before a SearchResult is ever built.
type SearchResult struct {
	Name        string  `json:"name"`
	Price       Price   `json:"price"`
	Rating      float64 `json:"rating"`
	RatingCount int     `json:"rating_count"`
	Image       string  `json:"image"`
	ProductURL  string  `json:"product_url"`
}

// Recommendation is a SearchResult that survived ranking, with its 1-based
// position in the ranked list.
type Recommendation struct {
	SearchResult
	Rank int `json:"rank"`
}

// RawProductFields holds the unparsed text extracted from a product page
// before normalization. Missing fields carry their safe defaults.
type RawProductFields struct {
	Name        string
	PriceText   string
	RatingText  string
	RatingCount string
	Image       string
	Images      []string
	Category    []string
}

// AnalyzeRequest is the request body for the analyze endpoint.
type AnalyzeRequest struct {
	URL string `json:"url"`
}

// ProductDetails is the public shape of a product in API responses.
type ProductDetails struct {
	Name         string   `json:"name"`
	Price        Price    `json:"price"`
	Rating       Rating   `json:"rating"`
	Images       []string `json:"images"`
	CategoryPath []string `json:"categoryPath,omitempty"`
}

// RecommendationItem is the public shape of one recommendation in API responses.
type RecommendationItem struct {
	Name       string  `json:"name"`
	Price      Price   `json:"price"`
	Rating     float64 `json:"rating"`
	Image      string  `json:"image"`
	ProductURL string  `json:"productUrl"`
}

// AnalyzeMeta carries request metadata alongside an analyze response.
type AnalyzeMeta struct {
	Marketplace  Marketplace `json:"marketplace"`
	ScrapingMode string      `json:"scrapingMode"`
	TookMs       int64       `json:"tookMs"`
}

// AnalyzeResponse is the full analyze endpoint payload.
type AnalyzeResponse struct {
	ProductDetails  ProductDetails       `json:"productDetails"`
	Recommendations []RecommendationItem `json:"recommendations"`
	Meta            AnalyzeMeta          `json:"meta"`
}

// NewProductDetails maps a stored product into its public response shape.
func NewProductDetails(p *Product) ProductDetails {
	return ProductDetails{
		Name:         p.Name,
		Price:        p.Price,
		Rating:       p.Rating,
		Images:       p.Images,
		CategoryPath: p.CategoryPath,
	}
}

// NewRecommendationItems maps ranked recommendations into their public shape.
func NewRecommendationItems(recs []Recommendation) []RecommendationItem {
	items := make([]RecommendationItem, 0, len(recs))
	for _, rec := range recs {
		items = append(items, RecommendationItem{
			Name:       rec.Name,
			Price:      rec.Price,
			Rating:     rec.Rating,
			Image:      rec.Image,
			ProductURL: rec.ProductURL,
		})
	}
	return items
}

// JoinPath flattens a category path for storage as a single text column.
func JoinPath(parts []string) string {
	return strings.Join(parts, " > ")
}

// SplitPath is the inverse of JoinPath. Empty input yields a nil slice.
func SplitPath(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return nil
	}
	parts := strings.Split(joined, " > ")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
