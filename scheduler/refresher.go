package scheduler

import (
	"log"

	"dealscout/repository"
	"dealscout/scraper"

	"github.com/robfig/cron/v3"
)

// Refresher periodically re-analyzes stored products so snapshots and their
// recommendation sets track marketplace price movement.
type Refresher struct {
	cron        *cron.Cron
	pipeline    *scraper.Pipeline
	productRepo *repository.ProductRepository
}

func NewRefresher(pipeline *scraper.Pipeline, productRepo *repository.ProductRepository) *Refresher {
	return &Refresher{
		cron:        cron.New(cron.WithSeconds()),
		pipeline:    pipeline,
		productRepo: productRepo,
	}
}

// Start schedules the refresh run every 12 hours (at 00:00 and 12:00).
func (rf *Refresher) Start() {
	_, err := rf.cron.AddFunc("0 0 */12 * * *", rf.refreshAll)
	if err != nil {
		log.Printf("Failed to schedule product refresher: %v", err)
		return
	}

	rf.cron.Start()
	log.Println("Product refresher scheduled to run every 12 hours")
}

// Stop stops the scheduled refreshes.
func (rf *Refresher) Stop() {
	if rf.cron != nil {
		rf.cron.Stop()
	}
}

// refreshAll re-runs the pipeline for every stored product, sequentially.
// Browser sessions are per-operation, so there is nothing to parallelize
// without multiplying Chromium load.
func (rf *Refresher) refreshAll() {
	products, err := rf.productRepo.GetProducts()
	if err != nil {
		log.Printf("Failed to get products for refresh: %v", err)
		return
	}

	if len(products) == 0 {
		log.Println("No products to refresh")
		return
	}

	log.Printf("Refreshing %d products", len(products))
	for _, product := range products {
		refreshed, err := rf.pipeline.AnalyzeProduct(product.URL)
		if err != nil {
			log.Printf("Failed to refresh %s: %v", product.URL, err)
			continue
		}

		if _, err := rf.pipeline.FindRecommendations(refreshed); err != nil {
			log.Printf("Failed to refresh recommendations for %s: %v", product.URL, err)
		}
	}
	log.Println("Product refresh complete")
}
