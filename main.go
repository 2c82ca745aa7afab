package main

import (
	"log"
	"net/http"

	"dealscout/config"
	"dealscout/database"
	"dealscout/handlers"
	"dealscout/middleware"
	"dealscout/repository"
	"dealscout/scheduler"
	"dealscout/scraper"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// Initialize database
	if err := database.InitDatabase(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDatabase()

	if err := database.CreateTables(); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository()
	recRepo := repository.NewRecommendationRepository()

	// Initialize the scraping pipeline
	browser, err := scraper.NewBrowserManager(cfg.Headless, cfg.UserAgents)
	if err != nil {
		log.Fatalf("Failed to launch browser: %v", err)
	}
	defer browser.Close()

	robots := scraper.NewRobotsGuard(nil)
	pipeline := scraper.NewPipeline(browser, robots, productRepo, recRepo, scraper.PipelineConfig{
		ScrapingMode:       cfg.ScrapingMode,
		SearchPages:        cfg.SearchPages,
		MaxRecommendations: cfg.MaxRecommendations,
		PriceBandPercent:   cfg.PriceBandPercent,
	})

	// Initialize and start the product refresher
	refresher := scheduler.NewRefresher(pipeline, productRepo)
	refresher.Start()
	defer refresher.Stop()

	// Initialize handlers
	h := handlers.NewHandlers(pipeline, productRepo, recRepo, cfg)

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware)

	r.HandleFunc("/health", healthCheck).Methods("GET")

	apiV1 := r.PathPrefix("/api/v1").Subrouter()
	apiV1.Use(middleware.RateLimitMiddleware(cfg.RequestRateLimit))
	apiV1.HandleFunc("/products/analyze", h.AnalyzeProduct).Methods("POST")
	apiV1.HandleFunc("/products", h.GetProducts).Methods("GET")
	apiV1.HandleFunc("/products/{id}", h.GetProduct).Methods("GET")
	apiV1.HandleFunc("/products/{id}/recommendations", h.GetRecommendations).Methods("GET")

	// CORS configuration
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	log.Printf("Server starting on %s:%s", cfg.Host, cfg.Port)
	log.Printf("  GET  /health - Health check")
	log.Printf("  POST /api/v1/products/analyze - Analyze a product URL")
	log.Printf("  GET  /api/v1/products - List analyzed products")
	log.Printf("  GET  /api/v1/products/{id}/recommendations - Ranked recommendations")

	log.Fatal(http.ListenAndServe(cfg.Host+":"+cfg.Port, c.Handler(r)))
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"service": "dealscout", "status": "healthy"}`))
}
