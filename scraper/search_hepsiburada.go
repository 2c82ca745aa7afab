package scraper

import (
	"fmt"
	"net/url"

	"dealscout/models"
)

var hepsiburadaSearchSpec = searchSpec{
	marketplace: models.MarketplaceHepsiburada,
	baseURL:     "https://www.hepsiburada.com",
	buildURL: func(query string, page int) string {
		return fmt.Sprintf("https://www.hepsiburada.com/ara?q=%s&sayfa=%d", url.QueryEscape(query), page)
	},
	containers: []string{
		"ul[class^='productListContent']",
		"div[data-test-id='product-list']",
	},
	items: []string{
		"li[class^='productListContent-item']",
		"[data-test-id='product-card-item']",
	},
	name: []FieldStrategy{
		{Selector: "h3[data-test-id='product-card-name']"},
		{Selector: "h3.product-title"},
		{Selector: "span[title]", Attr: "title"},
	},
	price: []FieldStrategy{
		{Selector: "div[data-test-id='price-current-price']"},
		{Selector: "div[data-test-id='final-price']"},
		{Selector: "span.price"},
	},
	rating: []FieldStrategy{
		{Selector: "span[data-test-id='rating-score']"},
		{Selector: "span.rate"},
	},
	count: []FieldStrategy{
		{Selector: "span[data-test-id='review-count']"},
		{Selector: "span.number-of-reviews"},
	},
	image: []FieldStrategy{
		{Selector: "img[data-test-id='product-card-image']", Attr: "src"},
		{Selector: "img", Attr: "src"},
	},
	link: []FieldStrategy{
		{Selector: "a[data-test-id='product-card-link']", Attr: "href"},
		{Selector: "a", Attr: "href"},
	},
}

// SearchHepsiburada crawls Hepsiburada search results for the query.
func SearchHepsiburada(session *Session, query string, pageCount int) ([]models.SearchResult, error) {
	return crawlSearch(session, hepsiburadaSearchSpec, query, pageCount)
}
