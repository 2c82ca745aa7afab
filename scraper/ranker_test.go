package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealscout/models"
)

func candidate(name string, price, rating float64, count int) models.SearchResult {
	return models.SearchResult{
		Name:        name,
		Price:       models.Price{Amount: price, Currency: "USD"},
		Rating:      rating,
		RatingCount: count,
		Image:       "https://img.example.com/" + name + ".jpg",
		ProductURL:  "https://www.amazon.com/dp/" + name,
	}
}

func TestRankFiltersToPriceBand(t *testing.T) {
	candidates := []models.SearchResult{
		candidate("too-cheap", 74, 4.9, 500),
		candidate("lower-edge", 75, 4.0, 10),
		candidate("upper-edge", 125, 4.0, 10),
		candidate("too-expensive", 126, 5.0, 9000),
		candidate("zero-price", 0, 4.5, 100),
		candidate("negative-price", -10, 4.5, 100),
	}

	ranked := Rank(candidates, 100, 8, 25)
	require.Len(t, ranked, 2)
	assert.Equal(t, "lower-edge", ranked[0].Name)
	assert.Equal(t, "upper-edge", ranked[1].Name)
}

func TestRankOrdering(t *testing.T) {
	candidates := []models.SearchResult{
		candidate("low-rating", 90, 3.5, 5000),
		candidate("best-rating-pricier", 110, 4.8, 20),
		candidate("same-rating-cheaper", 95, 4.8, 20),
		candidate("tiebreak-on-count", 95, 4.8, 300),
	}

	ranked := Rank(candidates, 100, 8, 25)
	require.Len(t, ranked, 4)
	assert.Equal(t, "tiebreak-on-count", ranked[0].Name)
	assert.Equal(t, "same-rating-cheaper", ranked[1].Name)
	assert.Equal(t, "best-rating-pricier", ranked[2].Name)
	assert.Equal(t, "low-rating", ranked[3].Name)

	for i, rec := range ranked {
		assert.Equal(t, i+1, rec.Rank, "ranks must be contiguous and 1-based")
	}
}

func TestRankIsStableForFullTies(t *testing.T) {
	candidates := []models.SearchResult{
		candidate("first-seen", 100, 4.5, 50),
		candidate("second-seen", 100, 4.5, 50),
		candidate("third-seen", 100, 4.5, 50),
	}

	ranked := Rank(candidates, 100, 8, 25)
	require.Len(t, ranked, 3)
	assert.Equal(t, "first-seen", ranked[0].Name)
	assert.Equal(t, "second-seen", ranked[1].Name)
	assert.Equal(t, "third-seen", ranked[2].Name)
}

func TestRankHonorsMaxCount(t *testing.T) {
	var candidates []models.SearchResult
	for i := 0; i < 20; i++ {
		candidates = append(candidates, candidate("item", 100, 4.0, i))
	}

	ranked := Rank(candidates, 100, 8, 25)
	assert.Len(t, ranked, 8)
}

func TestRankNonPositiveMaxCount(t *testing.T) {
	candidates := []models.SearchResult{
		candidate("a", 100, 4.5, 50),
		candidate("b", 110, 4.0, 20),
	}

	assert.Empty(t, Rank(candidates, 100, 0, 25))
	assert.Empty(t, Rank(candidates, 100, -1, 25))
}

func TestRankIsDeterministic(t *testing.T) {
	candidates := []models.SearchResult{
		candidate("a", 90, 4.5, 120),
		candidate("b", 110, 4.5, 120),
		candidate("c", 105, 4.9, 3),
	}

	first := Rank(candidates, 100, 8, 25)
	second := Rank(candidates, 100, 8, 25)
	assert.Equal(t, first, second)
}

func TestRankEmptyInput(t *testing.T) {
	ranked := Rank(nil, 100, 8, 25)
	assert.Empty(t, ranked)
}

// Mirrors a full analyze run: base product at 100, three search hits, a 25%
// band. Only the two in-band hits survive, ordered by rating.
func TestRankEndToEndScenario(t *testing.T) {
	candidates := []models.SearchResult{
		candidate("budget-pick", 90, 4.5, 210),
		candidate("top-rated", 120, 4.8, 85),
		candidate("premium", 200, 5.0, 4000),
	}

	ranked := Rank(candidates, 100, 8, 25)
	require.Len(t, ranked, 2)
	assert.Equal(t, "top-rated", ranked[0].Name)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "budget-pick", ranked[1].Name)
	assert.Equal(t, 2, ranked[1].Rank)
}
