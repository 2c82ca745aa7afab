package scraper

import (
	"log"

	"dealscout/models"
)

// Hepsiburada is client-rendered like Trendyol and gets the same settle
// treatment before any field lookup.
var hepsiburadaProductFields = struct {
	name     []FieldStrategy
	price    []FieldStrategy
	rating   []FieldStrategy
	count    []FieldStrategy
	image    []FieldStrategy
	images   []FieldStrategy
	category []FieldStrategy
}{
	name: []FieldStrategy{
		{Selector: "h1#product-name"},
		{Selector: "h1[itemprop='name']"},
		{Selector: "h1[data-test-id='title']"},
	},
	price: []FieldStrategy{
		{Selector: "[data-test-id='price-current-price']"},
		{Selector: "span[itemprop='price']"},
		{Selector: "#offering-price"},
		{Selector: ".price-value"},
	},
	rating: []FieldStrategy{
		{Selector: "[data-test-id='rating-score']"},
		{Selector: ".rating-score"},
		{Selector: "span.rating-star"},
	},
	count: []FieldStrategy{
		{Selector: "[data-test-id='review-count']"},
		{Selector: ".rating-count"},
		{Selector: "#productReviewsTab span.total"},
	},
	image: []FieldStrategy{
		{Selector: "img[data-test-id='carousel-image']", Attr: "src"},
		{Selector: "img[itemprop='image']", Attr: "src"},
		{Selector: ".product-image img", Attr: "src"},
	},
	images: []FieldStrategy{
		{Selector: "[data-test-id='carousel'] img", Attr: "src"},
		{Selector: ".product-image img", Attr: "src"},
	},
	category: []FieldStrategy{
		{Selector: "ul[itemtype*='BreadcrumbList'] li a span"},
		{Selector: ".breadcrumb a"},
	},
}

// HepsiburadaExtractor converts a rendered Hepsiburada product page into raw
// fields.
type HepsiburadaExtractor struct{}

func (e *HepsiburadaExtractor) Extract(session *Session) models.RawProductFields {
	session.SettleNetwork(spaSettleTimeout, spaSettleDelay)
	page := session.Page()

	fields := models.RawProductFields{
		Name:        resolveField(page, "hepsiburada.name", hepsiburadaProductFields.name).Or(defaultProductName),
		PriceText:   resolveField(page, "hepsiburada.price", hepsiburadaProductFields.price).Or(defaultPriceText),
		RatingText:  resolveField(page, "hepsiburada.rating", hepsiburadaProductFields.rating).Or(""),
		RatingCount: resolveField(page, "hepsiburada.ratingCount", hepsiburadaProductFields.count).Or(""),
		Image:       resolveField(page, "hepsiburada.image", hepsiburadaProductFields.image).Or(""),
		Images:      resolveList(page, hepsiburadaProductFields.images),
		Category:    resolveList(page, hepsiburadaProductFields.category),
	}

	log.Printf("Hepsiburada extraction done: name=%q priceText=%q", fields.Name, fields.PriceText)
	return fields
}
