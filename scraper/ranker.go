package scraper

import (
	"sort"

	"dealscout/models"
)

// Rank filters candidates to the price band around basePrice and sorts the
// survivors by rating (desc), then price (asc), then rating count (desc),
// each key breaking ties in the previous one. The sort is stable, so
// candidates equal on every key keep their original relative order. At most
// maxCount entries are returned, with contiguous 1-based ranks assigned in
// sorted order; a non-positive maxCount yields an empty list.
//
// Candidates with a zero rating are kept; they just sort last. Candidates
// with a non-positive price are always dropped.
func Rank(candidates []models.SearchResult, basePrice float64, maxCount int, bandPercent float64) []models.Recommendation {
	low := basePrice * (1 - bandPercent/100)
	high := basePrice * (1 + bandPercent/100)

	filtered := make([]models.SearchResult, 0, len(candidates))
	for _, c := range candidates {
		if c.Price.Amount <= 0 {
			continue
		}
		if c.Price.Amount < low || c.Price.Amount > high {
			continue
		}
		filtered = append(filtered, c)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Rating != filtered[j].Rating {
			return filtered[i].Rating > filtered[j].Rating
		}
		if filtered[i].Price.Amount != filtered[j].Price.Amount {
			return filtered[i].Price.Amount < filtered[j].Price.Amount
		}
		return filtered[i].RatingCount > filtered[j].RatingCount
	})

	if maxCount < 0 {
		maxCount = 0
	}
	if len(filtered) > maxCount {
		filtered = filtered[:maxCount]
	}

	ranked := make([]models.Recommendation, 0, len(filtered))
	for i, c := range filtered {
		ranked = append(ranked, models.Recommendation{SearchResult: c, Rank: i + 1})
	}
	return ranked
}
