package scraper

import (
	"fmt"
	"net/url"

	"dealscout/models"
)

var amazonSearchSpec = searchSpec{
	marketplace: models.MarketplaceAmazon,
	baseURL:     "https://www.amazon.com",
	buildURL: func(query string, page int) string {
		return fmt.Sprintf("https://www.amazon.com/s?k=%s&page=%d", url.QueryEscape(query), page)
	},
	containers: []string{
		"div.s-main-slot",
		"div.s-search-results",
		"span[data-component-type='s-search-results']",
	},
	items: []string{
		"div[data-component-type='s-search-result']",
		"div.s-result-item[data-asin]",
	},
	name: []FieldStrategy{
		{Selector: "h2 a span"},
		{Selector: "h2 span.a-text-normal"},
	},
	price: []FieldStrategy{
		{Selector: ".a-price .a-offscreen"},
		{Selector: "span.a-price-whole"},
	},
	rating: []FieldStrategy{
		{Selector: "i.a-icon-star-small span.a-icon-alt"},
		{Selector: "span.a-icon-alt"},
	},
	count: []FieldStrategy{
		{Selector: "span.a-size-base.s-underline-text"},
		{Selector: "a span.a-size-base"},
	},
	image: []FieldStrategy{
		{Selector: "img.s-image", Attr: "src"},
	},
	link: []FieldStrategy{
		{Selector: "h2 a", Attr: "href"},
		{Selector: "a.a-link-normal.s-no-outline", Attr: "href"},
	},
}

// SearchAmazon crawls Amazon search results for the query.
func SearchAmazon(session *Session, query string, pageCount int) ([]models.SearchResult, error) {
	return crawlSearch(session, amazonSearchSpec, query, pageCount)
}
