package repository

import (
	"database/sql"
	"fmt"
	"time"

	"dealscout/database"
	"dealscout/models"

	"github.com/lib/pq"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// UpsertProduct inserts a product snapshot or refreshes the existing row for
// the same (marketplace, url). Idempotent by design; analyzing the same page
// twice keeps a single row.
func (r *ProductRepository) UpsertProduct(product *models.Product) (*models.Product, error) {
	query := `
		INSERT INTO products (marketplace, url, name, price_amount, price_currency, rating_value, rating_count, images, category_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		ON CONFLICT (marketplace, url) DO UPDATE
		SET name = EXCLUDED.name,
			price_amount = EXCLUDED.price_amount,
			price_currency = EXCLUDED.price_currency,
			rating_value = EXCLUDED.rating_value,
			rating_count = EXCLUDED.rating_count,
			images = EXCLUDED.images,
			category_path = EXCLUDED.category_path,
			updated_at = EXCLUDED.updated_at
		RETURNING id, marketplace, url, name, price_amount, price_currency, rating_value, rating_count, images, category_path, created_at, updated_at
	`

	now := time.Now()
	row := database.DB.QueryRow(query,
		string(product.Marketplace), product.URL, product.Name,
		product.Price.Amount, product.Price.Currency,
		product.Rating.Value, product.Rating.Count,
		pq.Array(product.Images), models.JoinPath(product.CategoryPath), now,
	)

	saved, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert product: %v", err)
	}
	return saved, nil
}

// GetProductByID returns a stored product snapshot.
func (r *ProductRepository) GetProductByID(id int) (*models.Product, error) {
	query := `
		SELECT id, marketplace, url, name, price_amount, price_currency, rating_value, rating_count, images, category_path, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	product, err := scanProduct(database.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to get product: %v", err)
	}
	return product, nil
}

// GetProducts returns every stored product snapshot, newest first.
func (r *ProductRepository) GetProducts() ([]models.Product, error) {
	query := `
		SELECT id, marketplace, url, name, price_amount, price_currency, rating_value, rating_count, images, category_path, created_at, updated_at
		FROM products
		ORDER BY updated_at DESC
	`

	rows, err := database.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %v", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %v", err)
		}
		products = append(products, *product)
	}

	return products, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var product models.Product
	var marketplace, categoryPath string
	var images pq.StringArray

	err := row.Scan(
		&product.ID, &marketplace, &product.URL, &product.Name,
		&product.Price.Amount, &product.Price.Currency,
		&product.Rating.Value, &product.Rating.Count,
		&images, &categoryPath,
		&product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	product.Marketplace = models.Marketplace(marketplace)
	product.Images = []string(images)
	product.CategoryPath = models.SplitPath(categoryPath)
	return &product, nil
}
