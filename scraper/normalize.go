package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"dealscout/models"
)

var (
	numericRunPattern   = regexp.MustCompile(`[0-9][0-9.,]*`)
	ratingTokenPattern  = regexp.MustCompile(`[0-9]+(?:[.,][0-9]+)?`)
	nonDigitPattern     = regexp.MustCompile(`[^0-9]`)
	commaDecimalPattern = regexp.MustCompile(`,[0-9]{2}$`)
)

// ParsePrice converts a raw price string into an amount and a currency code.
// Currency is inferred from whichever marker appears, checked in a fixed
// priority order; a string with no marker defaults to USD. The numeric part
// is disambiguated between thousands grouping and decimal separators, which
// covers Western ("1,234.56"), Turkish ("1.234,56") and South-Asian lakh
// style ("1,23,456") formats. Unparsable input yields amount 0.
func ParsePrice(text string) models.Price {
	price := models.Price{Currency: detectCurrency(text)}

	run := numericRunPattern.FindString(text)
	if run == "" {
		return price
	}

	normalized := normalizeSeparators(run)
	if amount, err := strconv.ParseFloat(normalized, 64); err == nil && amount >= 0 {
		price.Amount = amount
	}
	return price
}

// detectCurrency maps the first recognized currency marker to its code.
func detectCurrency(text string) string {
	upper := strings.ToUpper(text)
	switch {
	case strings.Contains(text, "₺") || strings.Contains(upper, "TL"):
		return "TRY"
	case strings.Contains(text, "₹") || strings.Contains(upper, "INR"):
		return "INR"
	case strings.Contains(text, "$"):
		return "USD"
	case strings.Contains(text, "€") || strings.Contains(upper, "EUR"):
		return "EUR"
	case strings.Contains(text, "£") || strings.Contains(upper, "GBP"):
		return "GBP"
	default:
		return "USD"
	}
}

// normalizeSeparators rewrites a raw numeric run into strconv-parsable form.
func normalizeSeparators(run string) string {
	hasComma := strings.Contains(run, ",")
	hasPeriod := strings.Contains(run, ".")

	switch {
	case hasComma && hasPeriod:
		// The separator appearing later in the string is the decimal point;
		// everything earlier is thousands grouping.
		if strings.LastIndex(run, ",") > strings.LastIndex(run, ".") {
			run = strings.ReplaceAll(run, ".", "")
			run = strings.Replace(run, ",", ".", 1)
		} else {
			run = strings.ReplaceAll(run, ",", "")
		}

	case hasComma:
		// A single comma followed by exactly two digits is a decimal point;
		// anything else (incl. lakh grouping) is thousands separators.
		if strings.Count(run, ",") == 1 && commaDecimalPattern.MatchString(run) {
			run = strings.Replace(run, ",", ".", 1)
		} else {
			run = strings.ReplaceAll(run, ",", "")
		}

	case hasPeriod:
		dotCount := strings.Count(run, ".")
		trailing := len(run) - strings.LastIndex(run, ".") - 1
		if dotCount > 1 || trailing == 3 {
			run = strings.ReplaceAll(run, ".", "")
		}
		// A single period with two trailing digits stays as the decimal point.
	}

	return run
}

// ParseRating extracts the first numeric token from a rating string, treats
// a comma as the decimal separator, and clamps the result to [0, 5].
// Unparsable input yields 0.
func ParseRating(text string) float64 {
	token := ratingTokenPattern.FindString(text)
	if token == "" {
		return 0
	}

	token = strings.Replace(token, ",", ".", 1)
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0
	}

	if value < 0 {
		return 0
	}
	if value > 5 {
		return 5
	}
	return value
}

// ParseRatingCount strips every non-digit character and parses what remains
// as an integer. Unparsable input yields 0.
func ParseRatingCount(text string) int {
	digits := nonDigitPattern.ReplaceAllString(text, "")
	if digits == "" {
		return 0
	}

	count, err := strconv.Atoi(digits)
	if err != nil || count < 0 {
		return 0
	}
	return count
}
