package scraper

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/robotstxt"

	"dealscout/models"
)

func testPipeline(t *testing.T, guard *RobotsGuard) *Pipeline {
	t.Helper()
	if guard == nil {
		guard = NewRobotsGuard(nil)
	}
	cfg := PipelineConfig{
		ScrapingMode:       "headless",
		SearchPages:        2,
		MaxRecommendations: 8,
		PriceBandPercent:   25,
	}
	// No browser manager: the gate tests below must fail before any session
	// would be opened.
	return NewPipeline(nil, guard, nil, nil, cfg)
}

func TestAnalyzeProductRejectsUnsupportedMarketplace(t *testing.T) {
	p := testPipeline(t, nil)

	product, err := p.AnalyzeProduct("https://www.ebay.com/itm/123456")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedMarketplace))
	assert.Nil(t, product)
}

func TestAnalyzeProductRejectsRobotsDisallowed(t *testing.T) {
	rules, err := robotstxt.FromString("User-agent: *\nDisallow: /\n")
	require.NoError(t, err)

	guard := NewRobotsGuard(nil)
	guard.store("https://www.amazon.com", robotsCacheEntry{fetched: time.Now(), rules: rules})

	p := testPipeline(t, guard)
	product, err := p.AnalyzeProduct("https://www.amazon.com/dp/B08N5WRWNW")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBlockedByRobots))
	assert.Nil(t, product)
}

func TestFindRecommendationsRejectsUnsupportedMarketplace(t *testing.T) {
	p := testPipeline(t, nil)

	recs, err := p.FindRecommendations(&models.Product{
		Marketplace: models.MarketplaceOther,
		URL:         "https://www.ebay.com/itm/123456",
		Name:        "Some Listing",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedMarketplace))
	assert.Nil(t, recs)
}

func TestBuildProductNormalizesFields(t *testing.T) {
	raw := models.RawProductFields{
		Name:        "Anker PowerCore 10000",
		PriceText:   "$1,234.56",
		RatingText:  "4.5 out of 5 stars",
		RatingCount: "12,345 ratings",
		Image:       "https://img.example.com/main.jpg",
		Images:      []string{"https://img.example.com/a.jpg", "https://img.example.com/b.jpg"},
		Category:    []string{"Electronics", "Chargers"},
	}

	product := buildProduct(models.MarketplaceAmazon, "https://www.amazon.com/dp/X", raw)
	assert.Equal(t, models.MarketplaceAmazon, product.Marketplace)
	assert.Equal(t, "Anker PowerCore 10000", product.Name)
	assert.InDelta(t, 1234.56, product.Price.Amount, 0.001)
	assert.Equal(t, "USD", product.Price.Currency)
	assert.InDelta(t, 4.5, product.Rating.Value, 0.001)
	assert.Equal(t, 12345, product.Rating.Count)
	assert.Len(t, product.Images, 2)
	assert.Equal(t, []string{"Electronics", "Chargers"}, product.CategoryPath)
	assert.True(t, product.HasRating())
}

func TestBuildProductFallsBackToSingleImage(t *testing.T) {
	raw := models.RawProductFields{
		Name:      "Unknown Product",
		PriceText: "0",
		Image:     "https://img.example.com/only.jpg",
	}

	product := buildProduct(models.MarketplaceTrendyol, "https://www.trendyol.com/p/1", raw)
	assert.Equal(t, []string{"https://img.example.com/only.jpg"}, product.Images)
	assert.Equal(t, 0.0, product.Price.Amount)
	assert.False(t, product.HasRating())
}
