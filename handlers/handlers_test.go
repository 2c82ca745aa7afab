package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"dealscout/scraper"
)

func TestAnalyzeProductRejectsBadBody(t *testing.T) {
	h := &Handlers{}

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", "{not json"},
		{"missing url", `{}`},
		{"blank url", `{"url": "   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/products/analyze", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.AnalyzeProduct(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		})
	}
}

func TestWritePipelineErrorStatusMapping(t *testing.T) {
	h := &Handlers{}

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unsupported marketplace", fmt.Errorf("%w: https://ebay.com/itm/1", scraper.ErrUnsupportedMarketplace), http.StatusBadRequest},
		{"blocked by robots", fmt.Errorf("%w: https://amazon.com/dp/X", scraper.ErrBlockedByRobots), http.StatusForbidden},
		{"anything else", fmt.Errorf("navigation timed out"), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.writePipelineError(rec, "https://example.com", tt.err)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestGetProductInvalidID(t *testing.T) {
	h := &Handlers{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/abc", nil)
	rec := httptest.NewRecorder()

	// No mux vars are set on the request, so ID parsing fails.
	h.GetProduct(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
