package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds every setting the scraping pipeline and API server consume.
// Values come from the environment (a .env file is loaded at startup).
type Config struct {
	// Pipeline settings.
	ScrapingMode       string
	Headless           bool
	UserAgents         []string
	MaxRecommendations int
	SearchPages        int
	PriceBandPercent   float64

	// Present in configuration but not wired into pipeline behavior yet;
	// kept so deployments carrying these vars keep working.
	MaxRetries         int
	ProxyURL           string
	DomainRateLimitRPS float64

	// API server settings.
	Port             string
	Host             string
	AllowedOrigins   []string
	RequestRateLimit float64
}

// Load reads configuration from the environment with sensible defaults.
func Load() *Config {
	return &Config{
		ScrapingMode:       getEnv("SCRAPING_MODE", "headless"),
		Headless:           getEnvBool("BROWSER_HEADLESS", true),
		UserAgents:         getEnvList("USER_AGENT_POOL"),
		MaxRecommendations: getEnvInt("MAX_RECOMMENDATIONS", 8),
		SearchPages:        getEnvInt("SEARCH_PAGES", 2),
		PriceBandPercent:   getEnvFloat("PRICE_BAND_PERCENT", 25),

		MaxRetries:         getEnvInt("MAX_RETRIES", 3),
		ProxyURL:           getEnv("PROXY_URL", ""),
		DomainRateLimitRPS: getEnvFloat("DOMAIN_RATE_LIMIT_RPS", 1),

		Port:             getEnv("PORT", "8080"),
		Host:             getEnv("HOST", "0.0.0.0"),
		AllowedOrigins:   getEnvList("ALLOWED_ORIGINS"),
		RequestRateLimit: getEnvFloat("API_RATE_LIMIT_RPS", 5),
	}
}

// Helper functions for environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
