package scraper

import (
	"log"
	"time"

	"dealscout/models"
)

// Trendyol is a client-rendered SPA: product data only exists in the DOM
// after the app's network traffic settles, so extraction starts with a
// bounded settle wait plus a short fixed delay.
const (
	spaSettleTimeout = 10 * time.Second
	spaSettleDelay   = 1500 * time.Millisecond
)

var trendyolProductFields = struct {
	name     []FieldStrategy
	price    []FieldStrategy
	rating   []FieldStrategy
	count    []FieldStrategy
	image    []FieldStrategy
	images   []FieldStrategy
	category []FieldStrategy
}{
	name: []FieldStrategy{
		{Selector: "h1.pr-new-br"},
		{Selector: "h1.product-name"},
		{Selector: ".product-detail-container h1"},
	},
	price: []FieldStrategy{
		{Selector: "span.prc-dsc"},
		{Selector: ".product-price-container span.prc-dsc"},
		{Selector: "span.prc-slg"},
	},
	rating: []FieldStrategy{
		{Selector: ".rating-line-count"},
		{Selector: ".pr-rnr-sm-p span"},
		{Selector: ".product-rating-score .value"},
	},
	count: []FieldStrategy{
		{Selector: ".rvw-cnt"},
		{Selector: ".total-review-count"},
	},
	image: []FieldStrategy{
		{Selector: ".gallery-modal-content img", Attr: "src"},
		{Selector: ".product-slide img", Attr: "src"},
		{Selector: "img.detail-section-img", Attr: "src"},
	},
	images: []FieldStrategy{
		{Selector: ".product-slide img", Attr: "src"},
		{Selector: ".gallery-modal-content img", Attr: "src"},
	},
	category: []FieldStrategy{
		{Selector: ".product-detail-breadcrumb a"},
		{Selector: ".breadcrumb-wrapper a span"},
	},
}

// TrendyolExtractor converts a rendered Trendyol product page into raw fields.
type TrendyolExtractor struct{}

func (e *TrendyolExtractor) Extract(session *Session) models.RawProductFields {
	session.SettleNetwork(spaSettleTimeout, spaSettleDelay)
	page := session.Page()

	fields := models.RawProductFields{
		Name:        resolveField(page, "trendyol.name", trendyolProductFields.name).Or(defaultProductName),
		PriceText:   resolveField(page, "trendyol.price", trendyolProductFields.price).Or(defaultPriceText),
		RatingText:  resolveField(page, "trendyol.rating", trendyolProductFields.rating).Or(""),
		RatingCount: resolveField(page, "trendyol.ratingCount", trendyolProductFields.count).Or(""),
		Image:       resolveField(page, "trendyol.image", trendyolProductFields.image).Or(""),
		Images:      resolveList(page, trendyolProductFields.images),
		Category:    resolveList(page, trendyolProductFields.category),
	}

	log.Printf("Trendyol extraction done: name=%q priceText=%q", fields.Name, fields.PriceText)
	return fields
}
