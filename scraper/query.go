package scraper

import (
	"regexp"
	"strings"

	"dealscout/models"
)

// Query simplification keeps marketplace search results on topic: size
// tokens and trailing color words rarely survive into competitor listings,
// so they only narrow the result set.
var (
	sizeTokenPattern = regexp.MustCompile(`(?i)\b\d+([.,]\d+)?\s*(ml|l|lt|litre|liter|kg|g|gr|gram|mg|oz|cl|cc|adet|pcs|pack|x\d+)\b`)
	multiSpace       = regexp.MustCompile(`\s+`)
)

var trailingColorWords = map[string]bool{
	"black": true, "white": true, "red": true, "blue": true, "green": true,
	"yellow": true, "pink": true, "purple": true, "grey": true, "gray": true,
	"brown": true, "orange": true, "beige": true, "navy": true, "gold": true,
	"silver": true,
	// Turkish color names show up on Trendyol and Hepsiburada listings.
	"siyah": true, "beyaz": true, "kirmizi": true, "kırmızı": true,
	"mavi": true, "yesil": true, "yeşil": true, "sari": true, "sarı": true,
	"pembe": true, "mor": true, "gri": true, "kahverengi": true, "lacivert": true,
}

const maxQueryLength = 60

// SimplifySearchQuery derives a competitor-search query from a product name.
// Amazon titles are keyword-stuffed, so they get size tokens and trailing
// color words stripped plus a length cap; Trendyol and Hepsiburada names are
// already short and are used unmodified.
func SimplifySearchQuery(name string, marketplace models.Marketplace) string {
	if marketplace != models.MarketplaceAmazon {
		return strings.TrimSpace(name)
	}

	query := sizeTokenPattern.ReplaceAllString(name, " ")
	query = multiSpace.ReplaceAllString(query, " ")
	query = strings.TrimSpace(query)

	words := strings.Fields(query)
	for len(words) > 1 && trailingColorWords[strings.ToLower(words[len(words)-1])] {
		words = words[:len(words)-1]
	}
	query = strings.Join(words, " ")

	if len(query) > maxQueryLength {
		cut := query[:maxQueryLength]
		if idx := strings.LastIndex(cut, " "); idx > 0 {
			cut = cut[:idx]
		}
		query = cut
	}

	return query
}
