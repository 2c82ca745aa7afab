package scraper

import (
	"log"

	"dealscout/models"
)

// Safe defaults used when every strategy for a field comes up empty. A
// missing field never aborts product extraction.
const (
	defaultProductName = "Unknown Product"
	defaultPriceText   = "0"
)

// Amazon product pages are server-rendered, so fields are queryable as soon
// as the DOM is ready. Selector lists are ordered most-specific first; Amazon
// rotates its layout often enough that every field needs fallbacks.
var amazonProductFields = struct {
	name     []FieldStrategy
	price    []FieldStrategy
	rating   []FieldStrategy
	count    []FieldStrategy
	image    []FieldStrategy
	images   []FieldStrategy
	category []FieldStrategy
}{
	name: []FieldStrategy{
		{Selector: "#productTitle"},
		{Selector: "h1.a-size-large span"},
		{Selector: "h1#title"},
	},
	price: []FieldStrategy{
		{Selector: ".a-price .a-offscreen"},
		{Selector: "#corePrice_feature_div .a-price .a-offscreen"},
		{Selector: "#priceblock_ourprice"},
		{Selector: "#priceblock_dealprice"},
		{Selector: ".a-price-whole"},
	},
	rating: []FieldStrategy{
		{Selector: "#acrPopover", Attr: "title"},
		{Selector: "span[data-hook='rating-out-of-text']"},
		{Selector: "i.a-icon-star span.a-icon-alt"},
	},
	count: []FieldStrategy{
		{Selector: "#acrCustomerReviewText"},
		{Selector: "span[data-hook='total-review-count']"},
	},
	image: []FieldStrategy{
		{Selector: "#landingImage", Attr: "src"},
		{Selector: "#imgTagWrapperId img", Attr: "src"},
	},
	images: []FieldStrategy{
		{Selector: "#altImages img", Attr: "src"},
		{Selector: "#landingImage", Attr: "src"},
	},
	category: []FieldStrategy{
		{Selector: "#wayfinding-breadcrumbs_feature_div ul li a"},
		{Selector: "#nav-subnav a.nav-a span.nav-a-content"},
	},
}

// AmazonExtractor converts a rendered Amazon product page into raw fields.
type AmazonExtractor struct{}

// Extract resolves every product field with its ordered strategy list and
// fills safe defaults for total misses.
func (e *AmazonExtractor) Extract(session *Session) models.RawProductFields {
	page := session.Page()

	fields := models.RawProductFields{
		Name:        resolveField(page, "amazon.name", amazonProductFields.name).Or(defaultProductName),
		PriceText:   resolveField(page, "amazon.price", amazonProductFields.price).Or(defaultPriceText),
		RatingText:  resolveField(page, "amazon.rating", amazonProductFields.rating).Or(""),
		RatingCount: resolveField(page, "amazon.ratingCount", amazonProductFields.count).Or(""),
		Image:       resolveField(page, "amazon.image", amazonProductFields.image).Or(""),
		Images:      resolveList(page, amazonProductFields.images),
		Category:    resolveList(page, amazonProductFields.category),
	}

	log.Printf("Amazon extraction done: name=%q priceText=%q", fields.Name, fields.PriceText)
	return fields
}
