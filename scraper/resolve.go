package scraper

import (
	"log"
	"strings"
	"time"

	"github.com/go-rod/rod"
)

// FieldStrategy is one candidate way to locate a field on a page: a CSS
// selector plus an optional attribute to read (empty means text content).
// Each field carries an ordered list of these, so the extraction logic stays
// data and selector churn stays a one-line change.
type FieldStrategy struct {
	Selector string
	Attr     string
}

// Resolution is the outcome of best-effort field resolution. It always
// carries a usable value: either the first strategy hit or the caller's
// default. Extraction never fails because a field went missing.
type Resolution struct {
	Value string
	Found bool
}

// Or returns the resolved value, or def when nothing was found.
func (r Resolution) Or(def string) string {
	if r.Found {
		return r.Value
	}
	return def
}

const fieldAttemptTimeout = 2 * time.Second

// resolveField tries each strategy in order against the page and accepts the
// first one yielding non-empty content. A total miss is logged as a
// degradation and resolves to not-found, never to an error.
func resolveField(page *rod.Page, field string, strategies []FieldStrategy) Resolution {
	for _, strategy := range strategies {
		el, err := page.Timeout(fieldAttemptTimeout).Element(strategy.Selector)
		if err != nil {
			continue
		}
		if value, ok := readElement(el, strategy.Attr); ok {
			return Resolution{Value: value, Found: true}
		}
	}

	log.Printf("Field %q unresolved after %d strategies, using default", field, len(strategies))
	return Resolution{}
}

// resolveItemField is resolveField scoped to a single search-result node.
// Item lookups are local DOM queries, so a much shorter attempt timeout
// keeps multi-item pages fast.
func resolveItemField(item *rod.Element, strategies []FieldStrategy) Resolution {
	for _, strategy := range strategies {
		el, err := item.Timeout(400 * time.Millisecond).Element(strategy.Selector)
		if err != nil {
			continue
		}
		if value, ok := readElement(el, strategy.Attr); ok {
			return Resolution{Value: value, Found: true}
		}
	}
	return Resolution{}
}

// resolveList collects content from every element matched by the first
// strategy that yields any, preserving document order and dropping
// duplicates. Used for image galleries and breadcrumb trails.
func resolveList(page *rod.Page, strategies []FieldStrategy) []string {
	for _, strategy := range strategies {
		els, err := page.Timeout(fieldAttemptTimeout).Elements(strategy.Selector)
		if err != nil || len(els) == 0 {
			continue
		}

		var values []string
		seen := make(map[string]bool)
		for _, el := range els {
			value, ok := readElement(el, strategy.Attr)
			if !ok || seen[value] {
				continue
			}
			seen[value] = true
			values = append(values, value)
		}
		if len(values) > 0 {
			return values
		}
	}
	return nil
}

// readElement extracts trimmed text or attribute content from an element.
func readElement(el *rod.Element, attr string) (string, bool) {
	if attr == "" {
		text, err := el.Text()
		if err != nil {
			return "", false
		}
		text = strings.TrimSpace(text)
		return text, text != ""
	}

	value, err := el.Attribute(attr)
	if err != nil || value == nil {
		return "", false
	}
	trimmed := strings.TrimSpace(*value)
	return trimmed, trimmed != ""
}
