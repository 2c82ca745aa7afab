package scraper

import (
	"fmt"
	"log"
	"time"

	"dealscout/models"
)

const productNavTimeout = 30 * time.Second

// ProductStore persists product snapshots. Upserts are idempotent by
// (marketplace, url). The pipeline treats the store as durable and never
// retries; its failures propagate unchanged.
type ProductStore interface {
	UpsertProduct(product *models.Product) (*models.Product, error)
}

// RecommendationStore persists the ranked recommendation set for a product,
// replacing whatever set was stored before.
type RecommendationStore interface {
	SaveRecommendations(productID int, recs []models.Recommendation) error
}

// ProductExtractor converts a rendered product page into raw field text.
type ProductExtractor interface {
	Extract(session *Session) models.RawProductFields
}

type searchFunc func(session *Session, query string, pageCount int) ([]models.SearchResult, error)

// PipelineConfig is the slice of configuration the pipeline consumes.
type PipelineConfig struct {
	ScrapingMode       string
	SearchPages        int
	MaxRecommendations int
	PriceBandPercent   float64
}

// Pipeline sequences classification, the robots gate, browser sessions,
// extraction, normalization, search crawling, ranking and persistence into
// the two public operations.
type Pipeline struct {
	browser    *BrowserManager
	robots     *RobotsGuard
	products   ProductStore
	recs       RecommendationStore
	cfg        PipelineConfig
	extractors map[models.Marketplace]ProductExtractor
	searchers  map[models.Marketplace]searchFunc
}

// NewPipeline wires the pipeline with its collaborators.
func NewPipeline(browser *BrowserManager, robots *RobotsGuard, products ProductStore, recs RecommendationStore, cfg PipelineConfig) *Pipeline {
	return &Pipeline{
		browser:  browser,
		robots:   robots,
		products: products,
		recs:     recs,
		cfg:      cfg,
		extractors: map[models.Marketplace]ProductExtractor{
			models.MarketplaceAmazon:      &AmazonExtractor{},
			models.MarketplaceTrendyol:    &TrendyolExtractor{},
			models.MarketplaceHepsiburada: &HepsiburadaExtractor{},
		},
		searchers: map[models.Marketplace]searchFunc{
			models.MarketplaceAmazon:      SearchAmazon,
			models.MarketplaceTrendyol:    SearchTrendyol,
			models.MarketplaceHepsiburada: SearchHepsiburada,
		},
	}
}

// AnalyzeProduct scrapes one product page into a snapshot and upserts it.
// Classification and the robots gate run before any page is rendered; both
// abort fatally. Navigation failures propagate; field gaps never do.
func (p *Pipeline) AnalyzeProduct(url string) (*models.Product, error) {
	marketplace := DetectMarketplace(url)
	if !marketplace.IsSupported() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMarketplace, url)
	}

	if !p.robots.IsAllowed(url) {
		return nil, fmt.Errorf("%w: %s", ErrBlockedByRobots, url)
	}

	session, err := p.browser.OpenSession()
	if err != nil {
		return nil, fmt.Errorf("failed to open browser session: %v", err)
	}
	defer session.Close()

	if err := session.Navigate(url, productNavTimeout); err != nil {
		return nil, err
	}
	warnIfBotWall(session.Page(), url)

	raw := p.extractors[marketplace].Extract(session)
	product := buildProduct(marketplace, url, raw)

	saved, err := p.products.UpsertProduct(product)
	if err != nil {
		return nil, err
	}

	log.Printf("Analyzed %s product %q (price %.2f %s)", marketplace, saved.Name, saved.Price.Amount, saved.Price.Currency)
	return saved, nil
}

// FindRecommendations searches the product's marketplace for comparable
// items, ranks them into the configured price band, and stores the result.
func (p *Pipeline) FindRecommendations(product *models.Product) ([]models.Recommendation, error) {
	query := SimplifySearchQuery(product.Name, product.Marketplace)
	log.Printf("Searching %s for %q (%d pages)", product.Marketplace, query, p.cfg.SearchPages)

	search, ok := p.searchers[product.Marketplace]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMarketplace, product.URL)
	}

	session, err := p.browser.OpenSession()
	if err != nil {
		return nil, fmt.Errorf("failed to open browser session: %v", err)
	}
	defer session.Close()

	candidates, err := search(session, query, p.cfg.SearchPages)
	if err != nil {
		return nil, err
	}

	ranked := Rank(candidates, product.Price.Amount, p.cfg.MaxRecommendations, p.cfg.PriceBandPercent)
	log.Printf("Ranked %d of %d candidates for product %d", len(ranked), len(candidates), product.ID)

	if err := p.recs.SaveRecommendations(product.ID, ranked); err != nil {
		return nil, err
	}
	return ranked, nil
}

// buildProduct normalizes raw extracted text into a product snapshot. The
// price amount is always present (zero on parse failure) and never negative.
func buildProduct(marketplace models.Marketplace, url string, raw models.RawProductFields) *models.Product {
	images := raw.Images
	if len(images) == 0 && raw.Image != "" {
		images = []string{raw.Image}
	}

	return &models.Product{
		Marketplace: marketplace,
		URL:         url,
		Name:        raw.Name,
		Price:       ParsePrice(raw.PriceText),
		Rating: models.Rating{
			Value: ParseRating(raw.RatingText),
			Count: ParseRatingCount(raw.RatingCount),
		},
		Images:       images,
		CategoryPath: raw.Category,
	}
}
