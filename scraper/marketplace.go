package scraper

import (
	"net/url"
	"strings"

	"dealscout/models"
)

// DetectMarketplace classifies a product URL by hostname, checked in a fixed
// priority order. URLs that match no known marketplace classify as OTHER,
// which the pipeline treats as a fatal unsupported-marketplace condition.
func DetectMarketplace(rawURL string) models.Marketplace {
	host := hostnameOf(rawURL)

	switch {
	case strings.Contains(host, "amazon"):
		return models.MarketplaceAmazon
	case strings.Contains(host, "trendyol"):
		return models.MarketplaceTrendyol
	case strings.Contains(host, "hepsiburada"):
		return models.MarketplaceHepsiburada
	default:
		return models.MarketplaceOther
	}
}

// hostnameOf extracts a lowercase hostname, falling back to the raw string
// when it does not parse as a URL.
func hostnameOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return strings.ToLower(rawURL)
	}
	return strings.ToLower(parsed.Hostname())
}
