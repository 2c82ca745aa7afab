package repository

import (
	"fmt"

	"dealscout/database"
	"dealscout/models"
)

type RecommendationRepository struct{}

func NewRecommendationRepository() *RecommendationRepository {
	return &RecommendationRepository{}
}

// SaveRecommendations replaces the stored recommendation set for a product
// with the given ranked list. Delete and insert run in one transaction so a
// reader never sees a half-replaced set.
func (r *RecommendationRepository) SaveRecommendations(productID int, recs []models.Recommendation) error {
	tx, err := database.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM recommendations WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("failed to clear recommendations: %v", err)
	}

	query := `
		INSERT INTO recommendations (product_id, rank, name, price_amount, price_currency, rating_value, rating_count, image, product_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for _, rec := range recs {
		_, err := tx.Exec(query,
			productID, rec.Rank, rec.Name,
			rec.Price.Amount, rec.Price.Currency,
			rec.Rating, rec.RatingCount,
			rec.Image, rec.ProductURL,
		)
		if err != nil {
			return fmt.Errorf("failed to insert recommendation: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit recommendations: %v", err)
	}
	return nil
}

// GetRecommendations returns the stored ranked list for a product.
func (r *RecommendationRepository) GetRecommendations(productID int) ([]models.Recommendation, error) {
	query := `
		SELECT rank, name, price_amount, price_currency, rating_value, rating_count, image, product_url
		FROM recommendations
		WHERE product_id = $1
		ORDER BY rank ASC
	`

	rows, err := database.DB.Query(query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recommendations: %v", err)
	}
	defer rows.Close()

	var recs []models.Recommendation
	for rows.Next() {
		var rec models.Recommendation
		err := rows.Scan(
			&rec.Rank, &rec.Name,
			&rec.Price.Amount, &rec.Price.Currency,
			&rec.Rating, &rec.RatingCount,
			&rec.Image, &rec.ProductURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %v", err)
		}
		recs = append(recs, rec)
	}

	return recs, nil
}
