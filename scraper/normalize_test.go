package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		amount   float64
		currency string
	}{
		{"US format with dollar", "$1,234.56", 1234.56, "USD"},
		{"Turkish format with TL", "1.234,56 TL", 1234.56, "TRY"},
		{"Turkish lira symbol", "₺249,90", 249.90, "TRY"},
		{"comma thousands not decimal", "49,999", 49999, "USD"},
		{"lakh style grouping", "₹1,23,456", 123456, "INR"},
		{"INR code", "1,299 INR", 1299, "INR"},
		{"euro symbol", "€99,99", 99.99, "EUR"},
		{"EUR code", "1.299 EUR", 1299, "EUR"},
		{"pound symbol", "£12.50", 12.50, "GBP"},
		{"bare decimal", "19.99", 19.99, "USD"},
		{"trailing three digits are grouping", "1.234", 1234, "USD"},
		{"multiple periods are grouping", "1.234.567", 1234567, "USD"},
		{"no marker defaults to USD", "1299", 1299, "USD"},
		{"plain integer with dollar", "$500", 500, "USD"},
		{"garbage yields zero", "price unavailable", 0, "USD"},
		{"empty yields zero", "", 0, "USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := ParsePrice(tt.input)
			assert.InDelta(t, tt.amount, price.Amount, 0.001)
			assert.Equal(t, tt.currency, price.Currency)
		})
	}
}

func TestParsePriceIsDeterministic(t *testing.T) {
	inputs := []string{"$1,234.56", "1.234,56 TL", "₹1,23,456", "nonsense", ""}
	for _, input := range inputs {
		first := ParsePrice(input)
		second := ParsePrice(input)
		assert.Equal(t, first, second, "ParsePrice(%q) must be pure", input)
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain decimal", "4.5 out of 5 stars", 4.5},
		{"comma decimal", "4,3", 4.3},
		{"integer", "5", 5},
		{"clamped above five", "8.7", 5},
		{"non numeric", "no ratings yet", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseRating(tt.input), 0.001)
		})
	}
}

func TestParseRatingNeverOutOfRange(t *testing.T) {
	inputs := []string{"-3", "12345", "0.1", "5.0001", "4,9 yıldız", "★★★"}
	for _, input := range inputs {
		got := ParseRating(input)
		assert.GreaterOrEqual(t, got, 0.0, "input %q", input)
		assert.LessOrEqual(t, got, 5.0, "input %q", input)
	}
}

func TestParseRatingCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"with separators", "12,345 ratings", 12345},
		{"parenthesized", "(1.024)", 1024},
		{"plain", "87", 87},
		{"non numeric", "be the first to review", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRatingCount(tt.input))
		})
	}
}
