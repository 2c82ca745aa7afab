package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dealscout/models"
)

func TestSimplifySearchQuery(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		marketplace models.Marketplace
		want        string
	}{
		{
			"strips size tokens",
			"CeraVe Moisturizing Cream 453 g Daily Face Moisturizer",
			models.MarketplaceAmazon,
			"CeraVe Moisturizing Cream Daily Face Moisturizer",
		},
		{
			"strips trailing color word",
			"Anker PowerCore Portable Charger Black",
			models.MarketplaceAmazon,
			"Anker PowerCore Portable Charger",
		},
		{
			"strips stacked trailing colors",
			"Phone Case Navy Blue",
			models.MarketplaceAmazon,
			"Phone Case",
		},
		{
			"keeps color mid title",
			"Black Diamond Headlamp with Strap",
			models.MarketplaceAmazon,
			"Black Diamond Headlamp with Strap",
		},
		{
			"caps at a word boundary",
			"Extremely Long Keyword Stuffed Amazon Product Title With Many Descriptive Words Appended",
			models.MarketplaceAmazon,
			"Extremely Long Keyword Stuffed Amazon Product Title With",
		},
		{
			"trendyol name passes through",
			"Mavi Erkek Tişört 2 Adet Siyah",
			models.MarketplaceTrendyol,
			"Mavi Erkek Tişört 2 Adet Siyah",
		},
		{
			"hepsiburada name passes through",
			"Philips 1.7 L Su Isıtıcısı",
			models.MarketplaceHepsiburada,
			"Philips 1.7 L Su Isıtıcısı",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SimplifySearchQuery(tt.input, tt.marketplace)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSimplifySearchQueryNeverExceedsCap(t *testing.T) {
	long := "word " + "keyboard mechanical wireless rechargeable ergonomic backlit compact travel"
	got := SimplifySearchQuery(long, models.MarketplaceAmazon)
	assert.LessOrEqual(t, len(got), maxQueryLength)
}

func TestSimplifySearchQueryKeepsSingleWord(t *testing.T) {
	// A lone color word is the whole query; stripping it would leave nothing.
	got := SimplifySearchQuery("Black", models.MarketplaceAmazon)
	assert.Equal(t, "Black", got)
}
