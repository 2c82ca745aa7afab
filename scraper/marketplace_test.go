package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dealscout/models"
)

func TestDetectMarketplace(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want models.Marketplace
	}{
		{"amazon com", "https://www.amazon.com/dp/B08N5WRWNW", models.MarketplaceAmazon},
		{"amazon country domain", "https://www.amazon.com.tr/gp/product/B07XYZ", models.MarketplaceAmazon},
		{"trendyol", "https://www.trendyol.com/apple/iphone-15-p-773358088", models.MarketplaceTrendyol},
		{"hepsiburada", "https://www.hepsiburada.com/apple-iphone-15-p-HBCV00004X5XVH", models.MarketplaceHepsiburada},
		{"unknown store", "https://www.ebay.com/itm/123456", models.MarketplaceOther},
		{"marketplace word in path not host", "https://example.com/amazon/deals", models.MarketplaceOther},
		{"empty string", "", models.MarketplaceOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectMarketplace(tt.url))
		})
	}
}

func TestMarketplaceIsSupported(t *testing.T) {
	assert.True(t, models.MarketplaceAmazon.IsSupported())
	assert.True(t, models.MarketplaceTrendyol.IsSupported())
	assert.True(t, models.MarketplaceHepsiburada.IsSupported())
	assert.False(t, models.MarketplaceOther.IsSupported())
}
