package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
)

var DB *sql.DB

// InitDatabase initializes the database connection
func InitDatabase() error {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	var err error
	DB, err = sql.Open("postgres", dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	if err := DB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %v", err)
	}

	log.Println("Successfully connected to database")
	return nil
}

// CreateTables creates the necessary tables if they don't exist
func CreateTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			marketplace VARCHAR(20) NOT NULL,
			url TEXT NOT NULL,
			name TEXT NOT NULL,
			price_amount DECIMAL(12,2) NOT NULL DEFAULT 0,
			price_currency VARCHAR(3) NOT NULL DEFAULT 'USD',
			rating_value DECIMAL(3,2) DEFAULT 0,
			rating_count INTEGER DEFAULT 0,
			images TEXT[] DEFAULT '{}',
			category_path TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (marketplace, url)
		)`,
		`CREATE TABLE IF NOT EXISTS recommendations (
			id SERIAL PRIMARY KEY,
			product_id INTEGER REFERENCES products(id) ON DELETE CASCADE,
			rank INTEGER NOT NULL,
			name TEXT NOT NULL,
			price_amount DECIMAL(12,2) NOT NULL,
			price_currency VARCHAR(3) NOT NULL DEFAULT 'USD',
			rating_value DECIMAL(3,2) DEFAULT 0,
			rating_count INTEGER DEFAULT 0,
			image TEXT NOT NULL,
			product_url TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_products_marketplace_url ON products (marketplace, url)`,
		`CREATE INDEX IF NOT EXISTS idx_recommendations_product ON recommendations (product_id, rank)`,
	}

	for _, query := range queries {
		_, err := DB.Exec(query)
		if err != nil {
			return fmt.Errorf("failed to create table: %v", err)
		}
	}

	return nil
}

// CloseDatabase closes the database connection
func CloseDatabase() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
