package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinSplitPath(t *testing.T) {
	path := []string{"Electronics", "Computers & Accessories", "Keyboards"}
	joined := JoinPath(path)
	assert.Equal(t, "Electronics > Computers & Accessories > Keyboards", joined)
	assert.Equal(t, path, SplitPath(joined))
}

func TestSplitPathEmpty(t *testing.T) {
	assert.Nil(t, SplitPath(""))
	assert.Nil(t, SplitPath("   "))
}

func TestNewRecommendationItems(t *testing.T) {
	recs := []Recommendation{
		{
			SearchResult: SearchResult{
				Name:       "Item A",
				Price:      Price{Amount: 99.9, Currency: "USD"},
				Rating:     4.7,
				Image:      "https://img.example.com/a.jpg",
				ProductURL: "https://www.amazon.com/dp/A",
			},
			Rank: 1,
		},
	}

	items := NewRecommendationItems(recs)
	assert.Len(t, items, 1)
	assert.Equal(t, "Item A", items[0].Name)
	assert.Equal(t, 4.7, items[0].Rating)
	assert.Equal(t, "https://www.amazon.com/dp/A", items[0].ProductURL)
}

func TestNewRecommendationItemsEmpty(t *testing.T) {
	assert.NotNil(t, NewRecommendationItems(nil))
	assert.Empty(t, NewRecommendationItems(nil))
}
