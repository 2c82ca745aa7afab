package scraper

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-rod/rod"

	"dealscout/models"
)

const (
	searchNavTimeout     = 30 * time.Second
	containerWaitTimeout = 8 * time.Second
)

// searchSpec describes how to crawl one marketplace's search results. Like
// product extraction, everything selector-shaped is data so each marketplace
// stays independently testable.
type searchSpec struct {
	marketplace models.Marketplace
	baseURL     string
	buildURL    func(query string, page int) string

	// Ordered fallbacks for the result container and the item nodes.
	containers []string
	items      []string

	name   []FieldStrategy
	price  []FieldStrategy
	rating []FieldStrategy
	count  []FieldStrategy
	image  []FieldStrategy
	link   []FieldStrategy
}

// crawlSearch walks search pages 1..pageCount sequentially and collects one
// candidate per result item. Items missing any required field (name, price
// text, image, link) are dropped entirely; unlike product extraction there
// are no defaults here, a partial candidate is worthless downstream.
func crawlSearch(session *Session, spec searchSpec, query string, pageCount int) ([]models.SearchResult, error) {
	var results []models.SearchResult

	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		searchURL := spec.buildURL(query, pageNum)
		log.Printf("[%s] search page %d/%d: %s", spec.marketplace, pageNum, pageCount, searchURL)

		if err := session.Navigate(searchURL, searchNavTimeout); err != nil {
			return nil, fmt.Errorf("search page %d: %v", pageNum, err)
		}

		if !waitForContainer(session, spec.containers) {
			log.Printf("[%s] no result container on page %d, skipping page", spec.marketplace, pageNum)
			continue
		}

		items := findItems(session, spec.items)
		log.Printf("[%s] page %d: %d result items", spec.marketplace, pageNum, len(items))

		kept := 0
		for _, item := range items {
			result, ok := buildCandidate(item, spec)
			if !ok {
				continue
			}
			results = append(results, result)
			kept++
		}
		log.Printf("[%s] page %d: kept %d of %d items", spec.marketplace, pageNum, kept, len(items))
	}

	return results, nil
}

// waitForContainer tries each container selector in order and reports
// whether any appeared.
func waitForContainer(session *Session, selectors []string) bool {
	for _, selector := range selectors {
		if _, err := session.Page().Timeout(containerWaitTimeout).Element(selector); err == nil {
			return true
		}
	}
	return false
}

// findItems enumerates result nodes using the first item selector that
// matches anything.
func findItems(session *Session, selectors []string) rod.Elements {
	for _, selector := range selectors {
		els, err := session.Page().Timeout(containerWaitTimeout).Elements(selector)
		if err == nil && len(els) > 0 {
			return els
		}
	}
	return nil
}

// buildCandidate extracts one search-result item's fields from the DOM and
// hands them to assembleCandidate. The second return value is false when a
// required field is missing.
func buildCandidate(item *rod.Element, spec searchSpec) (models.SearchResult, bool) {
	return assembleCandidate(
		resolveItemField(item, spec.name),
		resolveItemField(item, spec.price),
		resolveItemField(item, spec.image),
		resolveItemField(item, spec.link),
		resolveItemField(item, spec.rating),
		resolveItemField(item, spec.count),
		spec.baseURL,
	)
}

// assembleCandidate normalizes resolved fields into a search result. Name,
// price text, image and link are required; a candidate missing any of them
// is dropped outright, there are no defaults for them. Rating and count are
// optional and default to zero.
func assembleCandidate(name, priceText, image, link, ratingText, countText Resolution, baseURL string) (models.SearchResult, bool) {
	if !name.Found || !priceText.Found || !image.Found || !link.Found {
		return models.SearchResult{}, false
	}

	return models.SearchResult{
		Name:        name.Value,
		Price:       ParsePrice(priceText.Value),
		Rating:      ParseRating(ratingText.Or("")),
		RatingCount: ParseRatingCount(countText.Or("")),
		Image:       absoluteURL(baseURL, image.Value),
		ProductURL:  absoluteURL(baseURL, link.Value),
	}, true
}

// absoluteURL resolves site-relative hrefs against the marketplace base.
func absoluteURL(base, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(href, "/")
}
