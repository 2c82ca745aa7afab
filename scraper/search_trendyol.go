package scraper

import (
	"fmt"
	"net/url"

	"dealscout/models"
)

var trendyolSearchSpec = searchSpec{
	marketplace: models.MarketplaceTrendyol,
	baseURL:     "https://www.trendyol.com",
	buildURL: func(query string, page int) string {
		return fmt.Sprintf("https://www.trendyol.com/sr?q=%s&pi=%d", url.QueryEscape(query), page)
	},
	containers: []string{
		"div.prdct-cntnr-wrppr",
		"div.search-results",
	},
	items: []string{
		"div.p-card-wrppr",
		"div.product-card",
	},
	name: []FieldStrategy{
		{Selector: "span.prdct-desc-cntnr-name", Attr: "title"},
		{Selector: "span.prdct-desc-cntnr-name"},
		{Selector: "div.product-name"},
	},
	price: []FieldStrategy{
		{Selector: "div.prc-box-dscntd"},
		{Selector: "div.prc-box-sllng"},
		{Selector: "div.price-item"},
	},
	rating: []FieldStrategy{
		{Selector: "span.rating-score"},
		{Selector: "div.rating-wrapper span"},
	},
	count: []FieldStrategy{
		{Selector: "span.ratingCount"},
		{Selector: "span.rating-count"},
	},
	image: []FieldStrategy{
		{Selector: "img.p-card-img", Attr: "src"},
		{Selector: "div.image-container img", Attr: "src"},
	},
	link: []FieldStrategy{
		{Selector: "a.p-card-chldrn-cntnr", Attr: "href"},
		{Selector: "a", Attr: "href"},
	},
}

// SearchTrendyol crawls Trendyol search results for the query.
func SearchTrendyol(session *Session, query string, pageCount int) ([]models.SearchResult, error) {
	return crawlSearch(session, trendyolSearchSpec, query, pageCount)
}
