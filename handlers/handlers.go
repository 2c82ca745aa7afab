package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dealscout/config"
	"dealscout/models"
	"dealscout/repository"
	"dealscout/scraper"

	"github.com/gorilla/mux"
)

type Handlers struct {
	pipeline    *scraper.Pipeline
	productRepo *repository.ProductRepository
	recRepo     *repository.RecommendationRepository
	cfg         *config.Config
}

// NewHandlers creates the HTTP handler set
func NewHandlers(pipeline *scraper.Pipeline, productRepo *repository.ProductRepository, recRepo *repository.RecommendationRepository, cfg *config.Config) *Handlers {
	return &Handlers{
		pipeline:    pipeline,
		productRepo: productRepo,
		recRepo:     recRepo,
		cfg:         cfg,
	}
}

// AnalyzeProduct runs the full pipeline for a product URL: scrape the page
// into a snapshot, then search and rank comparable products. Policy
// violations map to 403 so callers can tell "blocked by policy" apart from
// transient scraping failures.
func (h *Handlers) AnalyzeProduct(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		writeError(w, http.StatusBadRequest, "URL is required")
		return
	}

	started := time.Now()

	product, err := h.pipeline.AnalyzeProduct(req.URL)
	if err != nil {
		h.writePipelineError(w, req.URL, err)
		return
	}

	recs, err := h.pipeline.FindRecommendations(product)
	if err != nil {
		h.writePipelineError(w, req.URL, err)
		return
	}

	writeJSON(w, http.StatusOK, models.AnalyzeResponse{
		ProductDetails:  models.NewProductDetails(product),
		Recommendations: models.NewRecommendationItems(recs),
		Meta: models.AnalyzeMeta{
			Marketplace:  product.Marketplace,
			ScrapingMode: h.cfg.ScrapingMode,
			TookMs:       time.Since(started).Milliseconds(),
		},
	})
}

// GetProducts returns every analyzed product snapshot.
func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetProducts()
	if err != nil {
		log.Printf("Failed to get products: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get products")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}

// GetProduct returns one analyzed product snapshot.
func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	product, err := h.productRepo.GetProductByID(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// GetRecommendations returns the stored ranked list for a product.
func (h *Handlers) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	recs, err := h.recRepo.GetRecommendations(id)
	if err != nil {
		log.Printf("Failed to get recommendations for product %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to get recommendations")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"product_id":      id,
		"recommendations": recs,
		"count":           len(recs),
	})
}

// writePipelineError maps the pipeline error taxonomy onto HTTP statuses.
func (h *Handlers) writePipelineError(w http.ResponseWriter, url string, err error) {
	switch {
	case errors.Is(err, scraper.ErrUnsupportedMarketplace):
		writeError(w, http.StatusBadRequest, "Unsupported marketplace")
	case errors.Is(err, scraper.ErrBlockedByRobots):
		writeError(w, http.StatusForbidden, "Blocked by crawl policy")
	default:
		log.Printf("Pipeline failed for %s: %v", url, err)
		writeError(w, http.StatusBadGateway, "Failed to analyze product")
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product ID")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
